package accounts

const (
	queryGetOrCreate = `
		INSERT INTO accounts (user_id, email, tier, banned, daily_cap, daily_used, tokens_balance, last_reset_date)
		VALUES ($1, $2, 'Guest', FALSE, 0, 0, 0, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			email = COALESCE(NULLIF(EXCLUDED.email, ''), accounts.email),
			updated_at = NOW()
		RETURNING user_id, email, tier, banned, daily_cap, daily_used, tokens_balance, to_char(last_reset_date, 'YYYY-MM-DD')
	`

	queryResetDailyUsage = `
		UPDATE accounts
		SET daily_used = 0, last_reset_date = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	queryUpdateDailyUsage = `
		UPDATE accounts
		SET daily_used = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	queryBanAccount = `
		INSERT INTO accounts (user_id, email, tier, banned, daily_cap, daily_used, tokens_balance, last_reset_date)
		VALUES ($1, $2, 'Guest', TRUE, 0, 0, 0, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			banned = TRUE,
			daily_cap = 0,
			daily_used = 0,
			tokens_balance = 0,
			updated_at = NOW()
	`
)
