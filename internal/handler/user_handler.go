package handler

import (
	"log"
	"net/http"
	"strconv"

	"findme/internal/repository"
	"findme/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc  *service.UserService
	repo *repository.UserRepository
}

func NewUserHandler(svc *service.UserService, repo *repository.UserRepository) *UserHandler {
	return &UserHandler{svc: svc, repo: repo}
}

// userRequest carries a full replacement of the user's fields; all three are
// required on create and update alike.
type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: username, email, password"})
		return
	}
	u, err := h.svc.Create(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(c, "create_user", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully.", "user_id": u.ID})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrUserNotFound.Error()})
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: username, email, password"})
		return
	}
	if _, err := h.svc.Update(uint(id), req.Username, req.Email, req.Password); err != nil {
		writeError(c, "update_user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully."})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List()
	if err != nil {
		log.Printf("[list_users] unexpected failure: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// PasswordHash is json:"-", so rows marshal to {id, username, email}.
	c.JSON(http.StatusOK, users)
}
