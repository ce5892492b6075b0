package respond

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelsmith/server/internal/imagegen"
	"github.com/pixelsmith/server/internal/policy"
)

// BanResponse is the hard-rejection shape for ban-class codes
type BanResponse struct {
	Banned        bool   `json:"banned"`
	Reason        string `json:"reason"`
	FallbackImage string `json:"fallbackImage,omitempty"`
}

// BlockResponse is the soft-rejection shape. It ships with HTTP 200 on
// purpose: clients render the fallback image instead of an error toast.
type BlockResponse struct {
	Blocked       bool   `json:"blocked"`
	Reason        string `json:"reason"`
	FallbackImage string `json:"fallbackImage,omitempty"`
}

// QuotaResponse is the quota-rejection shape
type QuotaResponse struct {
	Error            string `json:"error"`
	DailyCap         int    `json:"dailyCap"`
	DailyUsed        int    `json:"dailyUsed"`
	CreditsRemaining int    `json:"creditsRemaining"`
}

// UnsafeResponse is the lexical pre-filter rejection shape
type UnsafeResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// PlanResponse is the tier allow-list rejection shape for creator tools
type PlanResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GenerationFailure is the upstream-failure shape; the fallback image
// keeps the front end from showing a blank failure state
type GenerationFailure struct {
	Error          string `json:"error"`
	Message        string `json:"message"`
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
	FallbackImage  string `json:"fallbackImage,omitempty"`
}

// renders a gate rejection in the stable shape for its class.
// Must only be called when the result is not allowed.
func GateRejection(c *gin.Context, result policy.Result, fallbackImage string) {
	switch result.Code {
	case policy.CodeIPBanned, policy.CodeAccountBanned, policy.CodePredator:
		c.JSON(http.StatusForbidden, BanResponse{
			Banned:        true,
			Reason:        result.Code,
			FallbackImage: fallbackImage,
		})

	case policy.CodeQuota:
		resp := QuotaResponse{Error: policy.CodeQuota}

		if result.Account != nil {
			resp.DailyCap = result.Account.DailyCap
			resp.DailyUsed = result.Account.DailyUsed
		}

		c.JSON(http.StatusPaymentRequired, resp)

	case policy.CodeUnsafeContent:
		c.JSON(http.StatusBadRequest, UnsafeResponse{
			Error:   policy.CodeUnsafeContent,
			Message: "prompt contains disallowed content",
		})

	case policy.CodePlanRequired:
		c.JSON(http.StatusForbidden, PlanResponse{
			Error:   policy.CodePlanRequired,
			Message: "requires a Creator plan or higher",
		})

	default:
		// soft moderation blocks
		c.JSON(http.StatusOK, BlockResponse{
			Blocked:       true,
			Reason:        result.Code,
			FallbackImage: fallbackImage,
		})
	}
}

// renders an image-backend failure, carrying the upstream status when
// one is available
func GenerationError(c *gin.Context, err error, fallbackImage string) {
	failure := GenerationFailure{
		Error:         "generation_failed",
		Message:       "failed to generate image",
		FallbackImage: fallbackImage,
	}

	status := http.StatusInternalServerError

	var apiErr *imagegen.APIError
	if errors.As(err, &apiErr) {
		failure.UpstreamStatus = apiErr.StatusCode
		status = http.StatusBadGateway
	} else if errors.Is(err, context.DeadlineExceeded) {
		failure.Message = "image generation timed out"
		status = http.StatusGatewayTimeout
	}

	c.JSON(status, failure)
}
