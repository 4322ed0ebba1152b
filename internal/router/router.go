package router

import (
	"net/http"
	"time"

	"findme/config"
	"findme/internal/handler"
	"findme/internal/repository"
	"findme/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	shareRepo := repository.NewShareRepository(db)

	// Services
	userSvc := service.NewUserService(db)
	locationSvc := service.NewLocationService(db)
	shareSvc := service.NewShareService(db)

	// Handlers
	userHandler := handler.NewUserHandler(userSvc, userRepo)
	locationHandler := handler.NewLocationHandler(locationSvc)
	shareHandler := handler.NewShareHandler(shareSvc, shareRepo)

	r.POST("/user", userHandler.Create)
	r.PUT("/user/:id", userHandler.Update)
	r.POST("/location", locationHandler.Upsert)
	r.GET("/location/:id", locationHandler.Get)
	r.POST("/location_share", shareHandler.Upsert)
	r.GET("/users", userHandler.List)
	r.GET("/location_shares", shareHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return r
}
