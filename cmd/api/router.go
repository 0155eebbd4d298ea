package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-manager/internal/shared/middleware"
	"book-manager/internal/shared/response"
	"book-manager/pkg/container"
	"book-manager/pkg/metrics"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		metrics.Middleware(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	c.AuthorHandler.RegisterRoutes(router)
	c.BookHandler.RegisterRoutes(router)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if c.Health != nil {
			if err := c.Health.HealthCheck(ctx.Request.Context()); err != nil {
				log.Warn().Err(err).Msg("Health check failed")
				response.JSON(ctx, http.StatusServiceUnavailable, gin.H{
					"status":   "unavailable",
					"database": "unreachable",
				})
				return
			}
			body["database"] = "ok"
		}

		if c.DB != nil {
			if stats, err := c.DB.Stats(); err == nil {
				body["pool"] = stats
			}
		}

		response.JSON(ctx, http.StatusOK, body)
	}
}
