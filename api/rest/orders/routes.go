package orders

import (
	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/internal/mailer"
)

// registers order submission routes
func RegisterRoutes(router *gin.RouterGroup, mail mailer.Mailer, ordersTo string) {
	router.POST("/orders", Handler(mail, ordersTo))
}
