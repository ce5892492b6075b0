package removebg

import (
	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/internal/auth"
	"github.com/pixelsmith/server/internal/generation"
	"github.com/pixelsmith/server/internal/policy"
)

// registers background removal routes
func RegisterRoutes(router *gin.RouterGroup, gate *policy.Gate, svc *generation.Service, fallbackImage string) {
	router.POST("/remove-background", auth.OptionalAuthMiddleware(), Handler(gate, svc, fallbackImage))
}
