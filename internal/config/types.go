package config

// holds all server configuration loaded from the environment
type Config struct {
	// OpenAI API key, used for both image generation and moderation
	OpenAIKey string

	// image model identifier sent to the generation API by default
	ImageModel string

	// Postgres connection string; empty means the account store is
	// unconfigured and quota enforcement is skipped
	DatabaseURL string

	// Redis URL for the rate limiter store; empty falls back to memory
	RedisURL string

	// AWS region for the SES mailer; empty disables order emails
	AWSRegion string

	// sender and recipient for order submission emails
	OrdersFrom string
	OrdersTo   string

	// image URL returned to clients on rejections and upstream failures
	FallbackImageURL string

	Environment string
}
