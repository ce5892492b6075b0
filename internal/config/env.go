package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultImageModel = "gpt-image-1"

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	imageModel := os.Getenv("IMAGE_MODEL")
	if imageModel == "" {
		imageModel = defaultImageModel
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	fallbackImage := os.Getenv("FALLBACK_IMAGE_URL")
	if fallbackImage == "" {
		fallbackImage = "/images/fallback.png"
	}

	return &Config{
		OpenAIKey:        openaiKey,
		ImageModel:       imageModel,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		OrdersFrom:       os.Getenv("ORDERS_FROM_EMAIL"),
		OrdersTo:         os.Getenv("ORDERS_TO_EMAIL"),
		FallbackImageURL: fallbackImage,
		Environment:      environment,
	}, nil
}
