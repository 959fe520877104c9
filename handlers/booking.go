package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shalfa/services/booking"
)

func bookingErrorStatus(err error) int {
	var sessErr *booking.SessionError
	if errors.As(err, &sessErr) {
		switch sessErr.Code {
		case "sessionNotFound", "roomNotFound":
			return http.StatusNotFound
		case "alreadySubmitted":
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}

// StartBookingSession opens a draft, optionally preselecting a room.
func (hb *HandlerBundle) StartBookingSession(c *gin.Context) {
	var input struct {
		Language string `json:"language"`
		RoomID   string `json:"roomId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := hb.Booking.CreateSession(c.Request.Context(), langFrom(input.Language), input.RoomID)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetBookingSession returns the draft with its filtered rooms and quote.
func (hb *HandlerBundle) GetBookingSession(c *gin.Context) {
	view, err := hb.Booking.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateBookingSession applies partial field edits to the draft.
func (hb *HandlerBundle) UpdateBookingSession(c *gin.Context) {
	var upd booking.DraftUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := hb.Booking.UpdateSession(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleBookingRoom selects or deselects a room in the draft.
func (hb *HandlerBundle) ToggleBookingRoom(c *gin.Context) {
	var input struct {
		RoomID string `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := hb.Booking.ToggleRoom(c.Request.Context(), c.Param("sessionID"), input.RoomID)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitBooking validates the draft and, on success, returns the external
// engine URL the client should open.
func (hb *HandlerBundle) SubmitBooking(c *gin.Context) {
	result, err := hb.Booking.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !result.Submitted {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
