package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"findme/internal/service"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	svc *service.LocationService
}

func NewLocationHandler(svc *service.LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

func (h *LocationHandler) Upsert(c *gin.Context) {
	// Pointers distinguish an absent coordinate from a legitimate 0.0.
	var req struct {
		UserID    uint     `json:"user_id"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == 0 || req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: user_id, latitude, longitude"})
		return
	}
	if _, err := h.svc.Upsert(req.UserID, *req.Latitude, *req.Longitude); err != nil {
		writeError(c, "update_location", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully."})
}

func (h *LocationHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": service.ErrLocationNotFound.Error()})
		return
	}
	loc, err := h.svc.Get(uint(userID))
	if err != nil {
		// Soft 404: a user with no location yet is an ordinary answer,
		// carried in a message body rather than an error one.
		if errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		writeError(c, "get_location", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":    loc.UserID,
		"latitude":   loc.Latitude,
		"longitude":  loc.Longitude,
		"updated_at": loc.UpdatedAt.Format(time.RFC3339),
	})
}
