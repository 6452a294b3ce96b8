package workflow

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/cleandesk/internal/config"
	"github.com/JaimeStill/cleandesk/internal/metrics"
	"github.com/JaimeStill/cleandesk/pkg/provider"
	"github.com/JaimeStill/cleandesk/pkg/storage"
)

// Runtime bundles the dependencies a pipeline run requires. It is
// constructed by the command layer from Infrastructure. Storage, Metrics
// and Observer may be nil.
type Runtime struct {
	RunID    uuid.UUID
	Config   *config.Config
	Provider provider.Client
	Storage  storage.System
	Metrics  *metrics.Recorder
	Logger   *slog.Logger
	Observer Observer
}

func (rt *Runtime) emit(e Event) {
	if rt.Observer != nil {
		rt.Observer(e)
	}
}
