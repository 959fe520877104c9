package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shalfa/services/prefs"
)

// GetPreferences returns a client's stored settings, or the defaults for
// a first-time client.
func (hb *HandlerBundle) GetPreferences(c *gin.Context) {
	clientID := c.Param("clientID")
	p, err := hb.Prefs.Get(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": p})
}

// UpdatePreferences applies partial settings edits.
func (hb *HandlerBundle) UpdatePreferences(c *gin.Context) {
	clientID := c.Param("clientID")
	var upd prefs.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := hb.Prefs.Update(c.Request.Context(), clientID, upd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": p})
}
