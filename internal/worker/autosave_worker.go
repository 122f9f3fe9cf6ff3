package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/examtools/vceplay/internal/player"
)

// AutosaveWorker periodically persists the in-progress session so a crash or
// power loss costs at most one interval of answers. Saves are best-effort
// full-record overwrites, so racing the foreground end-of-exam save is
// harmless.
type AutosaveWorker struct {
	player   *player.Player
	interval time.Duration
	log      zerolog.Logger
}

// NewAutosaveWorker creates a new AutosaveWorker. An interval of zero
// disables the loop.
func NewAutosaveWorker(p *player.Player, interval time.Duration, log zerolog.Logger) *AutosaveWorker {
	return &AutosaveWorker{
		player:   p,
		interval: interval,
		log:      log.With().Str("component", "autosave_worker").Logger(),
	}
}

// Start begins the save loop. Call in a goroutine; cancel ctx to stop. One
// final save runs on shutdown so the latest answers survive a clean exit.
func (w *AutosaveWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.log.Info().Msg("autosave disabled")
		return
	}

	w.log.Info().Dur("interval", w.interval).Msg("worker started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.saveOnce()
			w.log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			w.saveOnce()
		}
	}
}

func (w *AutosaveWorker) saveOnce() {
	if err := w.player.SaveActive(); err != nil {
		// The in-memory session stays valid; the next tick retries.
		w.log.Error().Err(err).Msg("autosave failed")
	}
}
