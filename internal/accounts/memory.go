package accounts

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with in-process storage. Used in tests
// and in deployments that run without a configured database.
type MemoryStore struct {
	mu       sync.Mutex
	accounts map[string]*Account

	// injectable clock for daily-reset tests
	now func() time.Time
}

// creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*Account),
		now:      time.Now,
	}
}

func (s *MemoryStore) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// installs an account as-is, replacing any existing record.
// Intended for tests and local tooling.
func (s *MemoryStore) Seed(account *Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *account
	s.accounts[account.UserID] = &copied
}

func (s *MemoryStore) GetOrCreate(_ context.Context, userID, email string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()

	account, exists := s.accounts[userID]
	if !exists {
		account = &Account{
			UserID:        userID,
			Email:         email,
			Tier:          TierGuest,
			DailyCap:      0,
			DailyUsed:     0,
			LastResetDate: today,
		}
		s.accounts[userID] = account
	}

	// lazy daily reset
	if account.LastResetDate != today {
		account.DailyUsed = 0
		account.LastResetDate = today
	}

	copied := *account
	return &copied, nil
}

func (s *MemoryStore) ConsumeCredit(_ context.Context, account *Account) (*int, error) {
	if account.Banned {
		return nil, ErrBanned
	}

	if account.DailyCap > 0 && account.DailyUsed >= account.DailyCap {
		return nil, ErrQuotaExhausted
	}

	account.DailyUsed++

	s.mu.Lock()
	if stored, exists := s.accounts[account.UserID]; exists {
		stored.DailyUsed = account.DailyUsed
		stored.LastResetDate = account.LastResetDate
	}
	s.mu.Unlock()

	return remaining(account), nil
}

func (s *MemoryStore) Ban(_ context.Context, account *Account, userID, email string) error {
	if account != nil {
		account.Banned = true
		account.DailyCap = 0
		account.DailyUsed = 0
		account.TokensBalance = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.accounts[userID]
	if !exists {
		stored = &Account{
			UserID:        userID,
			Email:         email,
			Tier:          TierGuest,
			LastResetDate: s.today(),
		}
		s.accounts[userID] = stored
	}

	stored.Banned = true
	stored.DailyCap = 0
	stored.DailyUsed = 0
	stored.TokensBalance = 0

	return nil
}
