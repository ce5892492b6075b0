package removebg

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/api/rest/respond"
	"github.com/pixelsmith/server/internal/auth"
	"github.com/pixelsmith/server/internal/errors"
	"github.com/pixelsmith/server/internal/generation"
	"github.com/pixelsmith/server/internal/policy"
)

// creates the handler for background removal. Same plan restriction as
// remix - it belongs to the paid creator-tool family.
func Handler(gate *policy.Gate, svc *generation.Service, fallbackImage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		userID, email := auth.Identity(c, req.UserID, req.Email)

		result := gate.Evaluate(c.Request.Context(), policy.Request{
			IP:                 c.ClientIP(),
			UserID:             userID,
			Email:              email,
			Prompt:             req.OriginalPrompt,
			RequireCreatorTier: true,
		})

		if !result.Allowed {
			respond.GateRejection(c, result, fallbackImage)
			return
		}

		out, err := svc.Create(c.Request.Context(), generation.Input{
			Kind:           generation.KindRemoveBackground,
			OriginalPrompt: req.OriginalPrompt,
			Style:          req.Style,
			Model:          req.Model,
		})

		if err != nil {
			respond.GenerationError(c, err, fallbackImage)
			return
		}

		c.JSON(http.StatusOK, Response{
			Blocked:          false,
			Base64:           out.Base64,
			Size:             out.Size,
			Style:            out.Style,
			Model:            out.Model,
			OriginalPrompt:   req.OriginalPrompt,
			CreditsRemaining: result.CreditsRemaining,
		})
	}
}
