package main

import (
	"context"
	"fmt"

	"github.com/pixelsmith/server/internal/config"
	"github.com/pixelsmith/server/internal/generation"
	"github.com/pixelsmith/server/internal/imagegen"
	"github.com/pixelsmith/server/internal/logger"
	"github.com/pixelsmith/server/internal/mailer"
	"github.com/pixelsmith/server/internal/moderation"
)

// holds all external service clients (images, moderation, mail)
type Services struct {
	Images     imagegen.Client
	Classifier moderation.Classifier
	Generation *generation.Service
	Mailer     mailer.Mailer
}

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	images := imagegen.NewOpenAIClient(imagegen.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.ImageModel,
	})

	classifier := moderation.NewOpenAIClassifier(moderation.OpenAIConfig{
		APIKey: cfg.OpenAIKey,
	})

	generationService := generation.New(images, cfg.ImageModel)

	// the SES mailer is optional; order routes only register when
	// sender details are configured
	var mail mailer.Mailer
	if cfg.AWSRegion != "" && cfg.OrdersFrom != "" {
		sesMailer, err := mailer.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.OrdersFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to create SES mailer: %w", err)
		}
		mail = sesMailer
	} else {
		logger.Warn("SES mailer not configured, order submissions disabled")
	}

	return &Services{
		Images:     images,
		Classifier: classifier,
		Generation: generationService,
		Mailer:     mail,
	}, nil
}
