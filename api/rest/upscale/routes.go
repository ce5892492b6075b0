package upscale

import (
	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/internal/auth"
	"github.com/pixelsmith/server/internal/generation"
	"github.com/pixelsmith/server/internal/policy"
)

// registers image upscale routes
func RegisterRoutes(router *gin.RouterGroup, gate *policy.Gate, svc *generation.Service, fallbackImage string) {
	router.POST("/upscale", auth.OptionalAuthMiddleware(), Handler(gate, svc, fallbackImage))
}
