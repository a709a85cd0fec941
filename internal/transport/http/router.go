// Package http wires the gin router: public auth endpoints, the
// token-guarded menu group and operational plumbing (CORS, rate limiting,
// request logging).
package http

import (
	"net/http"
	"time"

	authsvc "github.com/plateful/backend/internal/auth/service"
	"github.com/plateful/backend/internal/config"
	"github.com/plateful/backend/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, auth authsvc.Service, cfg *config.Config, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RateLimitPerIP(50, 100, 10_000, time.Hour))

	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.GET("/verify", h.verifyEmail)
		authGroup.POST("/login", h.login)
	}

	menuGroup := router.Group("/menu", middleware.Auth(auth))
	{
		menuGroup.POST("", h.addMenuItem)
		menuGroup.GET("", h.listMenuItems)
		menuGroup.DELETE("/:id", h.removeMenuItem)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	return router
}
