package edit

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

// creates the handler for image edits
func Handler(gate *policy.Gate, svc *generation.Service, fallbackImage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.OriginalPrompt == "" && req.DescribeChange == "" {
			errors.BadRequest(c, "originalPrompt or describeChange is required", nil)
			return
		}

		userID, email := auth.Identity(c, req.UserID, req.Email)

		// moderate everything the user wrote, not just one field
		moderated := strings.TrimSpace(req.OriginalPrompt + " " + req.DescribeChange)

		result := gate.Evaluate(c.Request.Context(), policy.Request{
			IP:     c.ClientIP(),
			UserID: userID,
			Email:  email,
			Prompt: moderated,
		})

		if !result.Allowed {
			respond.GateRejection(c, result, fallbackImage)
			return
		}

		out, err := svc.Create(c.Request.Context(), generation.Input{
			Kind:           generation.KindEdit,
			OriginalPrompt: req.OriginalPrompt,
			DescribeChange: req.DescribeChange,
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
			OriginalPrompt:   req.OriginalPrompt,
			DescribeChange:   req.DescribeChange,
			CreditsRemaining: result.CreditsRemaining,
		})
	}
}
