package app

import (
	"context"

	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// ExecuteConfigureCommand stores the account credentials in the configuration
// file, verifying them against the API first.
func ExecuteConfigureCommand(ctx context.Context, cfg *config.Config) {
	// A surveys listing is the cheapest call that exercises both credentials.
	if _, err := newClient(ctx, cfg).GetSurveys(ctx); err != nil {
		logger.Fatalf(ctx, "Credential check failed: %v", err)
	}

	if err := config.SaveCredentials(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Info(ctx, "Credentials verified and saved")
}
