package handler

import (
	"errors"
	"log"
	"net/http"

	"findme/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors to the response contract: not-found -> 404,
// known conflicts and rule violations -> 400, anything else -> logged and
// returned as 400 with the raw failure text. Handler errors never produce 5xx.
func writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrShareUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserConflict),
		errors.Is(err, service.ErrShareExists),
		errors.Is(err, service.ErrSelfShare):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[%s] unexpected failure: err=%v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
