package server

import (
	"github.com/askhat/gostore/internal/auth"
	"github.com/askhat/gostore/internal/config"
	"github.com/askhat/gostore/internal/logger"
	"github.com/askhat/gostore/internal/metrics"
	"github.com/askhat/gostore/internal/presigned"
	"github.com/askhat/gostore/internal/store"
	"github.com/gin-gonic/gin"
)

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config           config.Config
	StoreService     *store.Service
	AuthService      *auth.Service
	PresignedHandler *presigned.Handler
}

// NewRouter builds a Gin engine with foundational middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	router.Use(metrics.Middleware())

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	api := router.Group("/v1")
	if deps.Config.Auth.Enabled() && deps.AuthService != nil {
		api.Use(auth.AuthMiddleware(deps.AuthService))
	}

	if deps.StoreService != nil {
		store.RegisterRoutes(api, deps.StoreService)
	}
	if deps.PresignedHandler != nil {
		deps.PresignedHandler.RegisterRoutes(api)
	}

	return router
}
