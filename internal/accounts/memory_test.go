package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_Defaults(t *testing.T) {
	store := NewMemoryStore()

	account, err := store.GetOrCreate(context.Background(), "user-1", "u@example.com")

	require.NoError(t, err)
	assert.Equal(t, "user-1", account.UserID)
	assert.Equal(t, "u@example.com", account.Email)
	assert.Equal(t, TierGuest, account.Tier)
	assert.False(t, account.Banned)
	assert.Equal(t, 0, account.DailyCap)
	assert.Equal(t, 0, account.DailyUsed)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), account.LastResetDate)
}

func TestGetOrCreate_SameDayIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, "user-1", "u@example.com")
	require.NoError(t, err)

	first.DailyCap = 10
	first.DailyUsed = 4
	store.accounts["user-1"].DailyCap = 10
	store.accounts["user-1"].DailyUsed = 4

	second, err := store.GetOrCreate(ctx, "user-1", "u@example.com")

	require.NoError(t, err)
	assert.Equal(t, 4, second.DailyUsed, "no double reset within the same day")
}

func TestGetOrCreate_LazyDailyReset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	store.now = func() time.Time { return yesterday }

	account, err := store.GetOrCreate(ctx, "user-1", "")
	require.NoError(t, err)

	store.accounts["user-1"].DailyUsed = 5
	assert.Equal(t, yesterday.Format("2006-01-02"), account.LastResetDate)

	store.now = time.Now

	account, err = store.GetOrCreate(ctx, "user-1", "")

	require.NoError(t, err)
	assert.Equal(t, 0, account.DailyUsed, "usage resets on first request of a new day")
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), account.LastResetDate)
}

func TestConsumeCredit_UnlimitedCap(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	account, err := store.GetOrCreate(ctx, "user-1", "")
	require.NoError(t, err)
	require.Equal(t, 0, account.DailyCap)

	// cap 0 always succeeds and reports unlimited remaining
	for i := 0; i < 100; i++ {
		left, err := store.ConsumeCredit(ctx, account)
		require.NoError(t, err)
		assert.Nil(t, left)
	}

	assert.Equal(t, 100, account.DailyUsed)
}

func TestConsumeCredit_CapExhaustion(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	account, err := store.GetOrCreate(ctx, "user-1", "")
	require.NoError(t, err)

	account.DailyCap = 3
	store.accounts["user-1"].DailyCap = 3

	// exactly N calls succeed
	for i := 0; i < 3; i++ {
		left, err := store.ConsumeCredit(ctx, account)
		require.NoError(t, err)
		require.NotNil(t, left)
		assert.Equal(t, 2-i, *left)
	}

	// the N+1th call fails with quota
	left, err := store.ConsumeCredit(ctx, account)

	assert.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Nil(t, left)
	assert.Equal(t, 3, account.DailyUsed)
}

func TestConsumeCredit_Banned(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	account, err := store.GetOrCreate(ctx, "user-1", "")
	require.NoError(t, err)

	require.NoError(t, store.Ban(ctx, account, "user-1", ""))

	_, err = store.ConsumeCredit(ctx, account)

	assert.ErrorIs(t, err, ErrBanned)
	assert.Equal(t, 0, account.DailyUsed, "banned accounts never consume credits")
}

func TestBan_Idempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	account, err := store.GetOrCreate(ctx, "user-1", "u@example.com")
	require.NoError(t, err)

	account.DailyCap = 50
	account.TokensBalance = 200

	require.NoError(t, store.Ban(ctx, account, "user-1", "u@example.com"))
	require.NoError(t, store.Ban(ctx, account, "user-1", "u@example.com"))

	assert.True(t, account.Banned)
	assert.Equal(t, 0, account.DailyCap)
	assert.Equal(t, 0, account.DailyUsed)
	assert.Equal(t, 0, account.TokensBalance)

	reloaded, err := store.GetOrCreate(ctx, "user-1", "")
	require.NoError(t, err)
	assert.True(t, reloaded.Banned)
}

func TestBan_UnknownUserCreatesBannedRecord(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Ban(ctx, nil, "user-9", "x@example.com"))

	account, err := store.GetOrCreate(ctx, "user-9", "")

	require.NoError(t, err)
	assert.True(t, account.Banned)
}

func TestTier_CanRemix(t *testing.T) {
	tests := []struct {
		tier Tier
		want bool
	}{
		{TierGuest, false},
		{TierFree, false},
		{TierCreator, true},
		{TierPro, true},
		{TierStudio, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.CanRemix())
		})
	}
}
