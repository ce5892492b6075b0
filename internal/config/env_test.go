package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("IMAGE_MODEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("FALLBACK_IMAGE_URL", "")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "gpt-image-1", cfg.ImageModel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "/images/fallback.png", cfg.FallbackImageURL)
}

func TestLoadOptionalOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("IMAGE_MODEL", "dall-e-3")
	t.Setenv("DATABASE_URL", "postgres://localhost/pixelsmith")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("ORDERS_FROM_EMAIL", "orders@pixelsmith.app")
	t.Setenv("ORDERS_TO_EMAIL", "shop@pixelsmith.app")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "dall-e-3", cfg.ImageModel)
	assert.Equal(t, "postgres://localhost/pixelsmith", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "eu-west-1", cfg.AWSRegion)
	assert.Equal(t, "orders@pixelsmith.app", cfg.OrdersFrom)
	assert.Equal(t, "shop@pixelsmith.app", cfg.OrdersTo)
}
