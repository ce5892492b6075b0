package policy

import (
	"github.com/pixelsmith/server/internal/accounts"
)

// stable machine-readable rejection codes
const (
	CodeIPBanned      = "ip_banned"
	CodeAccountBanned = "account_banned"
	CodePredator      = "predator"
	CodeUnsafeContent = "unsafe_content"
	CodePlanRequired  = "plan_required"
	CodeQuota         = "quota"
	CodeNSFW          = "nsfw"
	CodePolicy        = "policy"
)

// FailurePolicy decides what happens when a dependency is unreachable
type FailurePolicy string

const (
	// the request proceeds as if the dependency had said yes
	FailOpen FailurePolicy = "allow"

	// the request is rejected
	FailClosed FailurePolicy = "deny"
)

// Config makes the fail-open/fail-closed asymmetry explicit per
// dependency instead of an accident of separate error handlers.
type Config struct {
	// account store unreachable: default allow (skip quota enforcement)
	StoreOnUnavailable FailurePolicy

	// moderation classifier unreachable: default deny (never skip moderation)
	ModerationOnUnavailable FailurePolicy
}

// returns the default asymmetric policy
func DefaultConfig() Config {
	return Config{
		StoreOnUnavailable:      FailOpen,
		ModerationOnUnavailable: FailClosed,
	}
}

// Request is the per-call input to the gate
type Request struct {
	IP     string
	UserID string
	Email  string
	Prompt string

	// the operation belongs to the paid creator-tool family (remix,
	// background removal); rejected before moderation or credit
	// consumption when the tier does not qualify
	RequireCreatorTier bool
}

// Result is the gate's decision for one request
type Result struct {
	// the request may proceed to prompt composition and generation
	Allowed bool

	// rejection code when not allowed
	Code string

	// soft rejections render as a success-style response with a
	// blocked flag so clients show a fallback image, not an error toast
	Soft bool

	// resolved account, nil for anonymous or store-less requests
	Account *accounts.Account

	// credits left after consumption; nil means unlimited or unknown
	CreditsRemaining *int
}
