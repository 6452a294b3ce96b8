// Package infrastructure assembles the shared dependencies of a cleandesk
// run: logging, the LLM provider client, the optional blob archive, and the
// metrics recorder.
package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/JaimeStill/cleandesk/internal/config"
	"github.com/JaimeStill/cleandesk/internal/metrics"
	"github.com/JaimeStill/cleandesk/internal/notes"
	"github.com/JaimeStill/cleandesk/internal/workflow"
	"github.com/JaimeStill/cleandesk/pkg/provider"
	"github.com/JaimeStill/cleandesk/pkg/storage"
)

// Infrastructure holds the systems shared by every pipeline stage. Storage
// is nil when no archive destination is configured. Provider is nil until
// Connect is called, so stages that never classify need no LLM credentials.
type Infrastructure struct {
	RunID    uuid.UUID
	Config   *config.Config
	Logger   *slog.Logger
	Provider provider.Client
	Storage  storage.System
	Metrics  *metrics.Recorder
}

// New creates an Infrastructure from the loaded configuration. Logs are
// written to w (stderr when nil) and tagged with a fresh run ID.
func New(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	if w == nil {
		w = os.Stderr
	}

	runID := uuid.New()
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.Level(),
	})).With("run_id", runID.String())

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		if !errors.Is(err, storage.ErrDisabled) {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		store = nil
	}

	logger.Info(
		"infrastructure ready",
		"variant", cfg.Variant,
		"env", cfg.Env(),
		"provider", cfg.Agent.Name,
		"archive", store != nil,
	)

	return &Infrastructure{
		RunID:   runID,
		Config:  cfg,
		Logger:  logger,
		Storage: store,
		Metrics: metrics.New(),
	}, nil
}

// Connect builds the LLM provider client. It is idempotent.
func (i *Infrastructure) Connect(ctx context.Context) error {
	if i.Provider != nil {
		return nil
	}

	client, err := provider.New(ctx, &i.Config.Agent)
	if err != nil {
		return fmt.Errorf("provider init failed: %w", err)
	}

	i.Provider = client
	i.Logger.Info("provider connected", "provider", client.Name())
	return nil
}

// Consolidator returns a folder scanner bound to the scan configuration.
func (i *Infrastructure) Consolidator() *notes.Consolidator {
	return notes.New(&i.Config.Scan, i.Logger, i.Metrics)
}

// Runtime returns the workflow runtime for this run. observer may be nil.
func (i *Infrastructure) Runtime(observer workflow.Observer) *workflow.Runtime {
	return &workflow.Runtime{
		RunID:    i.RunID,
		Config:   i.Config,
		Provider: i.Provider,
		Storage:  i.Storage,
		Metrics:  i.Metrics,
		Logger:   i.Logger.With("system", "workflow"),
		Observer: observer,
	}
}
