package handler

import (
	"log"
	"net/http"

	"findme/internal/repository"
	"findme/internal/service"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	svc  *service.ShareService
	repo *repository.ShareRepository
}

func NewShareHandler(svc *service.ShareService, repo *repository.ShareRepository) *ShareHandler {
	return &ShareHandler{svc: svc, repo: repo}
}

func (h *ShareHandler) Upsert(c *gin.Context) {
	var req struct {
		FollowerID  uint  `json:"follower_id"`
		FollowingID uint  `json:"following_id"`
		IsApproved  *bool `json:"is_approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FollowerID == 0 || req.FollowingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: follower_id, following_id"})
		return
	}
	_, created, err := h.svc.Upsert(req.FollowerID, req.FollowingID, req.IsApproved)
	if err != nil {
		writeError(c, "update_location_share", err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Location share created successfully."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location share updated successfully."})
}

func (h *ShareHandler) List(c *gin.Context) {
	shares, err := h.repo.List()
	if err != nil {
		log.Printf("[list_location_shares] unexpected failure: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shares)
}
