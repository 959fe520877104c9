package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shalfa/services/concierge"
)

func conciergeErrorStatus(err error) int {
	var sessErr *concierge.SessionError
	if errors.As(err, &sessErr) {
		switch sessErr.Code {
		case "sessionNotFound":
			return http.StatusNotFound
		case "sessionBusy":
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// StartChatSession opens a transcript seeded with the localized greeting.
func (hb *HandlerBundle) StartChatSession(c *gin.Context) {
	var input struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := hb.Concierge.CreateSession(c.Request.Context(), langFrom(input.Language))
	if err != nil {
		c.JSON(conciergeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "suggestions": concierge.Suggestions})
}

// GetChatSession returns the transcript and panel state.
func (hb *HandlerBundle) GetChatSession(c *gin.Context) {
	sess, err := hb.Concierge.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(conciergeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SendChatMessage appends the user's message and the assistant's reply.
func (hb *HandlerBundle) SendChatMessage(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := hb.Concierge.Send(c.Request.Context(), c.Param("sessionID"), input.Text)
	if err != nil {
		c.JSON(conciergeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// SetChatPanel records the widget panel's open/closed state.
func (hb *HandlerBundle) SetChatPanel(c *gin.Context) {
	var input struct {
		Open bool `json:"open"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := hb.Concierge.SetOpen(c.Request.Context(), c.Param("sessionID"), input.Open)
	if err != nil {
		c.JSON(conciergeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// GetChatSuggestions lists the quick-question pills.
func (hb *HandlerBundle) GetChatSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": concierge.Suggestions})
}

// GetTooltipState derives the prompt bubble state for a client. The client
// reports how long its widget has been mounted and whether the panel is
// open; the dismissal flag comes from stored preferences.
func (hb *HandlerBundle) GetTooltipState(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientId is required"})
		return
	}

	var query struct {
		Open      bool  `form:"open"`
		ElapsedMs int64 `form:"elapsedMs"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := hb.Prefs.Get(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	state := concierge.TooltipStateFor(p.TooltipDismissed, query.Open, time.Duration(query.ElapsedMs)*time.Millisecond)
	c.JSON(http.StatusOK, gin.H{"state": state})
}
