package controllers

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"metronome/internal/config"
	"metronome/internal/logger"
	"metronome/internal/metronome"
	"metronome/internal/subscription"
)

// StateRenderer is the view contract the controller drives. Implemented
// by views.MainView; tests substitute a recorder.
type StateRenderer interface {
	RenderState(metronome.State)
}

// LogLevelSetter lets a config reload adjust logging verbosity.
type LogLevelSetter interface {
	SetLevel(zerolog.Level)
}

// MainController owns the single metronome state for the process
// lifetime and is its only mutator. Intents arrive synchronously from
// the Fyne event loop, so the state itself needs no locking; only the
// config copy is shared with background goroutines.
type MainController struct {
	state  *metronome.State
	view   StateRenderer
	logger logger.Logger
	levels LogLevelSetter

	mu  sync.RWMutex
	cfg config.Config
}

func NewMainController(state *metronome.State, cfg config.Config, log logger.Logger) *MainController {
	return &MainController{
		state:  state,
		cfg:    cfg,
		logger: log,
	}
}

// SetView associates the view and pushes the current state into it.
func (mc *MainController) SetView(view StateRenderer) {
	mc.view = view
	mc.render()
}

// SetLogLevelController wires the logger whose level follows
// logging.level from config reloads.
func (mc *MainController) SetLogLevelController(levels LogLevelSetter) {
	mc.levels = levels
}

// HandleIntent applies a user intent to the state and re-renders. All
// intents are total: there is no failure path.
func (mc *MainController) HandleIntent(intent metronome.Intent) {
	mc.state.Apply(intent)

	mc.logger.Debug("Controller", "intent handled", map[string]interface{}{
		"intent":     intent.String(),
		"tempo":      mc.state.Tempo,
		"beats":      mc.state.Beats,
		"tempo_mode": mc.state.TempoMode,
	})

	mc.render()
}

// State returns a copy of the current metronome state.
func (mc *MainController) State() metronome.State {
	return mc.state.Snapshot()
}

// Config returns the most recently applied configuration.
func (mc *MainController) Config() config.Config {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.cfg
}

// WatchConfig consumes reload results from the config watcher until the
// channel closes or the context ends. Failed reloads keep the previous
// config; the user never sees them.
func (mc *MainController) WatchConfig(ctx context.Context, updates <-chan config.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Err != nil {
				continue
			}
			mc.applyConfig(update.Config)
		}
	}
}

// WatchSubscription drains the placeholder subscription channel. The
// events carry no payload yet; receipt is logged and nothing else
// happens.
func (mc *MainController) WatchSubscription(ctx context.Context, events <-chan subscription.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			mc.logger.Debug("Controller", "subscription event received", nil)
		}
	}
}

// Shutdown logs the final counters. The state is intentionally not
// persisted.
func (mc *MainController) Shutdown() {
	mc.logger.Info("Controller", "controller stopped", map[string]interface{}{
		"tempo": mc.state.Tempo,
		"beats": mc.state.Beats,
	})
}

func (mc *MainController) applyConfig(cfg config.Config) {
	mc.mu.Lock()
	mc.cfg = cfg
	mc.mu.Unlock()

	if mc.levels != nil {
		mc.levels.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	}

	mc.logger.Info("Controller", "configuration updated", map[string]interface{}{
		"log_level": cfg.Logging.Level,
	})
}

func (mc *MainController) render() {
	if mc.view == nil {
		return
	}
	mc.view.RenderState(mc.state.Snapshot())
}
