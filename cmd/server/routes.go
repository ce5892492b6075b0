package main

import (
	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/api/rest/edit"
	"github.com/pixelsmith/server/api/rest/generate"
	"github.com/pixelsmith/server/api/rest/health"
	"github.com/pixelsmith/server/api/rest/orders"
	"github.com/pixelsmith/server/api/rest/remix"
	"github.com/pixelsmith/server/api/rest/removebg"
	"github.com/pixelsmith/server/api/rest/upscale"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(server.limiter.Middleware())

	{
		v1.GET("/ping", health.PingHandler)

		fallback := server.config.FallbackImageURL

		generate.RegisterRoutes(v1, server.gate, server.services.Generation, fallback)
		edit.RegisterRoutes(v1, server.gate, server.services.Generation, fallback)
		upscale.RegisterRoutes(v1, server.gate, server.services.Generation, fallback)
		remix.RegisterRoutes(v1, server.gate, server.services.Generation, fallback)
		removebg.RegisterRoutes(v1, server.gate, server.services.Generation, fallback)

		if server.services.Mailer != nil {
			orders.RegisterRoutes(v1, server.services.Mailer, server.config.OrdersTo)
		}
	}
}
