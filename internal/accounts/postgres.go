package accounts

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelsmith/server/internal/logger"
)

// PostgresStore implements Store over a pgx connection pool.
// Increments are last-write-wins; a lost race under-counts or over-counts
// a credit by a small margin, which is an accepted approximation.
type PostgresStore struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// creates a Postgres-backed account store
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db:  db,
		now: time.Now,
	}
}

func (s *PostgresStore) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *PostgresStore) GetOrCreate(ctx context.Context, userID, email string) (*Account, error) {
	today := s.today()

	var account Account

	err := s.db.QueryRow(ctx, queryGetOrCreate, userID, email, today).Scan(
		&account.UserID,
		&account.Email,
		&account.Tier,
		&account.Banned,
		&account.DailyCap,
		&account.DailyUsed,
		&account.TokensBalance,
		&account.LastResetDate,
	)

	if err != nil {
		return nil, err
	}

	// lazy daily reset: a stale date means this is the first request of
	// the day, so usage starts over
	if account.LastResetDate != today {
		account.DailyUsed = 0
		account.LastResetDate = today

		if _, err := s.db.Exec(ctx, queryResetDailyUsage, userID, today); err != nil {
			return nil, err
		}
	}

	return &account, nil
}

func (s *PostgresStore) ConsumeCredit(ctx context.Context, account *Account) (*int, error) {
	if account.Banned {
		return nil, ErrBanned
	}

	if account.DailyCap > 0 && account.DailyUsed >= account.DailyCap {
		return nil, ErrQuotaExhausted
	}

	account.DailyUsed++

	// the local check already passed, so a persistence failure fails open:
	// availability is preferred over strict quota accuracy
	if _, err := s.db.Exec(ctx, queryUpdateDailyUsage, account.UserID, account.DailyUsed); err != nil {
		logger.ErrorErr(err, "failed to persist credit consumption, allowing request",
			"user_id", account.UserID,
		)
	}

	return remaining(account), nil
}

func (s *PostgresStore) Ban(ctx context.Context, account *Account, userID, email string) error {
	if account != nil {
		account.Banned = true
		account.DailyCap = 0
		account.DailyUsed = 0
		account.TokensBalance = 0
	}

	if _, err := s.db.Exec(ctx, queryBanAccount, userID, email, s.today()); err != nil {
		logger.ErrorErr(err, "failed to persist account ban",
			"user_id", userID,
		)
	}

	return nil
}
