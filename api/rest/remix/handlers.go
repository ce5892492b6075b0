package remix

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/api/rest/respond"
	"github.com/pixelsmith/server/internal/auth"
	"github.com/pixelsmith/server/internal/errors"
	"github.com/pixelsmith/server/internal/generation"
	"github.com/pixelsmith/server/internal/policy"
)

// creates the handler for prompt remixing. Remix is restricted to paid
// creator tiers; the gate enforces that before charging anything.
func Handler(gate *policy.Gate, svc *generation.Service, fallbackImage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		userID, email := auth.Identity(c, req.UserID, req.Email)

		moderated := strings.TrimSpace(req.OriginalPrompt + " " + req.RemixPrompt)

		result := gate.Evaluate(c.Request.Context(), policy.Request{
			IP:                 c.ClientIP(),
			UserID:             userID,
			Email:              email,
			Prompt:             moderated,
			RequireCreatorTier: true,
		})

		if !result.Allowed {
			respond.GateRejection(c, result, fallbackImage)
			return
		}

		out, err := svc.Create(c.Request.Context(), generation.Input{
			Kind:           generation.KindRemix,
			OriginalPrompt: req.OriginalPrompt,
			DescribeChange: req.RemixPrompt,
			Ratio:          req.Ratio,
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
			Ratio:            out.Ratio,
			Size:             out.Size,
			Style:            out.Style,
			Model:            out.Model,
			IsRemix:          true,
			CreditsRemaining: result.CreditsRemaining,
		})
	}
}
