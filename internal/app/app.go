package app

import (
	"context"
	"encoding/json"
	"fmt"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
	qualtrics_service "github.com/baguage/qualtrics-go/internal/service/qualtrics"
)

// newClient builds the API client or stops the application.
func newClient(ctx context.Context, cfg *config.Config) qualtrics_client.Client {
	client, err := qualtrics_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Qualtrics client: %v", err)
	}

	return client
}

// newService builds the workflow service over a fresh API client.
func newService(ctx context.Context, cfg *config.Config) qualtrics_service.Service {
	return qualtrics_service.NewService(cfg, newClient(ctx, cfg))
}

// printJSON renders the value as indented JSON on standard output.
// Command results go to stdout so they can be piped; diagnostics go to the
// logger.
func printJSON(ctx context.Context, value any) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logger.Fatalf(ctx, "Failed to render result: %v", err)
	}

	fmt.Println(string(encoded))
}
