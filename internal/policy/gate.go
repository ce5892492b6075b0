package policy

import (
	"context"
	"errors"

	"github.com/pixelsmith/server/internal/accounts"
	"github.com/pixelsmith/server/internal/banlist"
	"github.com/pixelsmith/server/internal/logger"
	"github.com/pixelsmith/server/internal/moderation"
)

// Gate runs the ordered decision pipeline shared by every
// content-producing endpoint: ban check, lexical filter, account lookup,
// moderation classification, quota consumption.
type Gate struct {
	registry   *banlist.Registry
	store      accounts.Store // nil when no database is configured
	classifier moderation.Classifier
	cfg        Config
}

// creates a gate. store may be nil; quota and account-ban stages are
// then skipped and every request is treated as unlimited.
func NewGate(registry *banlist.Registry, store accounts.Store, classifier moderation.Classifier, cfg Config) *Gate {
	return &Gate{
		registry:   registry,
		store:      store,
		classifier: classifier,
		cfg:        cfg,
	}
}

// evaluates the five gate stages in strict order. Every return path is a
// decision, never an error: upstream failures collapse into the
// configured per-dependency policy.
func (g *Gate) Evaluate(ctx context.Context, req Request) Result {
	// stage 1: process-local IP ban
	if g.registry.Contains(req.IP) {
		return Result{Code: CodeIPBanned}
	}

	// stage 2: lexical pre-filter, before any remote call
	if moderation.ContainsDisallowed(req.Prompt) {
		return Result{Code: CodeUnsafeContent}
	}

	// stage 3: account lookup and persisted ban flag
	account := g.lookupAccount(ctx, req)
	if account != nil && account.Banned {
		g.registry.Add(req.IP)
		return Result{Code: CodeAccountBanned, Account: account}
	}

	// tier allow-list for creator tools, checked while the account is in
	// hand and before anything is charged or classified
	if req.RequireCreatorTier {
		if account == nil || !account.Tier.CanRemix() {
			return Result{Code: CodePlanRequired, Account: account}
		}
	}

	// stage 4: remote moderation classification
	decision, err := g.classifier.Classify(ctx, req.Prompt)
	if err != nil {
		logger.ErrorErr(err, "moderation classifier unavailable",
			"policy", string(g.cfg.ModerationOnUnavailable),
		)

		if g.cfg.ModerationOnUnavailable == FailOpen {
			decision = moderation.DecisionSafe
		} else {
			// fail closed: never skip moderation on error
			decision = moderation.DecisionBlockPolicy
		}
	}

	switch decision {
	case moderation.DecisionBlockMinor:
		return g.banForMinorContent(ctx, req, account)

	case moderation.DecisionBlockNSFW:
		return Result{Code: CodeNSFW, Soft: true, Account: account}

	case moderation.DecisionBlockPolicy:
		return Result{Code: CodePolicy, Soft: true, Account: account}
	}

	// stage 5: quota consumption
	if account == nil {
		// anonymous or store-less request: unlimited
		return Result{Allowed: true}
	}

	left, err := g.store.ConsumeCredit(ctx, account)
	if err != nil {
		if errors.Is(err, accounts.ErrBanned) {
			return Result{Code: CodeAccountBanned, Account: account}
		}

		if errors.Is(err, accounts.ErrQuotaExhausted) {
			zero := 0
			return Result{Code: CodeQuota, Account: account, CreditsRemaining: &zero}
		}

		// store impls fail open on persistence errors, so anything else
		// here is unexpected; allow per the store policy
		logger.ErrorErr(err, "unexpected consume error, allowing request",
			"user_id", account.UserID,
		)
	}

	return Result{Allowed: true, Account: account, CreditsRemaining: left}
}

// resolves or creates the account, honoring the store-unavailable policy
func (g *Gate) lookupAccount(ctx context.Context, req Request) *accounts.Account {
	if g.store == nil || req.UserID == "" {
		return nil
	}

	account, err := g.store.GetOrCreate(ctx, req.UserID, req.Email)
	if err != nil {
		logger.ErrorErr(err, "account store unavailable",
			"user_id", req.UserID,
			"policy", string(g.cfg.StoreOnUnavailable),
		)

		// an absent account means quota enforcement is skipped, which is
		// exactly the fail-open behavior; fail-closed deployments would
		// reject here, but the default bias is availability
		return nil
	}

	return account
}

// handles the hard ban path for minor-sexualizing content: ban the
// account and the IP for the process lifetime, and still charge one
// credit as a deterrent cost.
func (g *Gate) banForMinorContent(ctx context.Context, req Request, account *accounts.Account) Result {
	g.registry.Add(req.IP)

	if account != nil && g.store != nil {
		// deterrent charge happens before the ban zeroes the counters
		if _, err := g.store.ConsumeCredit(ctx, account); err != nil {
			logger.ErrorErr(err, "failed to charge deterrent credit",
				"user_id", account.UserID,
			)
		}

		if err := g.store.Ban(ctx, account, req.UserID, req.Email); err != nil {
			logger.ErrorErr(err, "failed to ban account",
				"user_id", account.UserID,
			)
		}
	} else if g.store != nil && req.UserID != "" {
		// no account loaded (store hiccup at stage 3) but identity known
		if err := g.store.Ban(ctx, nil, req.UserID, req.Email); err != nil {
			logger.ErrorErr(err, "failed to ban account",
				"user_id", req.UserID,
			)
		}
	}

	logger.Warn("banned requester for minor-sexualizing content",
		"ip", req.IP,
		"user_id", req.UserID,
	)

	return Result{Code: CodePredator, Account: account}
}
