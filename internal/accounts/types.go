package accounts

import (
	"context"
	"errors"
)

// Tier identifies the plan an account is on. Ban status is tracked
// separately so moderation state never masquerades as a plan.
type Tier string

const (
	TierGuest   Tier = "Guest"
	TierFree    Tier = "Free"
	TierCreator Tier = "Creator"
	TierPro     Tier = "Pro"
	TierStudio  Tier = "Studio"
)

// tiers allowed to use the remix family of endpoints
var remixTiers = map[Tier]bool{
	TierCreator: true,
	TierPro:     true,
	TierStudio:  true,
}

// reports whether the tier may use remix and background removal
func (t Tier) CanRemix() bool {
	return remixTiers[t]
}

// Account is one end user's usage state
type Account struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email,omitempty"`
	Tier          Tier   `json:"tier"`
	Banned        bool   `json:"banned"`
	DailyCap      int    `json:"daily_cap"`  // 0 means unlimited
	DailyUsed     int    `json:"daily_used"` // credits consumed since LastResetDate
	TokensBalance int    `json:"tokens_balance"`
	LastResetDate string `json:"last_reset_date"` // UTC, YYYY-MM-DD
}

var (
	// returned by ConsumeCredit for banned accounts
	ErrBanned = errors.New("account is banned")

	// returned by ConsumeCredit when the daily cap is exhausted
	ErrQuotaExhausted = errors.New("daily quota exhausted")
)

// Store persists per-user accounts in an external keyed record store.
//
// GetOrCreate resolves the account for a user, creating it with defaults
// (Guest tier, unlimited cap) on first sight, and applies the lazy daily
// reset before returning.
//
// ConsumeCredit increments DailyUsed by exactly one and returns the
// remaining credits, nil when the cap is unlimited. Persistence failure
// after a passing local check fails open.
//
// Ban idempotently flags the account and zeroes cap, usage and tokens.
type Store interface {
	GetOrCreate(ctx context.Context, userID, email string) (*Account, error)
	ConsumeCredit(ctx context.Context, account *Account) (*int, error)
	Ban(ctx context.Context, account *Account, userID, email string) error
}

// remaining credits after a successful consume; nil means unlimited
func remaining(account *Account) *int {
	if account.DailyCap == 0 {
		return nil
	}

	left := account.DailyCap - account.DailyUsed
	if left < 0 {
		left = 0
	}

	return &left
}
