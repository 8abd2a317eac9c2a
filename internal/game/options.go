package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/strategy"
)

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

// engineConfig holds the optional collaborators of an engine.
type engineConfig struct {
	logger  *log.Logger
	bus     EventBus
	clock   quartz.Clock
	stats   *statistics.Statistics
	betting []strategy.Betting // nil means every betting strategy
	playing []strategy.Playing // nil means every playing strategy
}

// WithLogger sets the diagnostic logger. Default discards.
func WithLogger(logger *log.Logger) EngineOption {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes on an existing bus instead of a new one.
func WithEventBus(bus EventBus) EngineOption {
	return func(c *engineConfig) {
		c.bus = bus
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) EngineOption {
	return func(c *engineConfig) {
		c.clock = clock
	}
}

// WithStatistics records into stats instead of a fresh set.
func WithStatistics(stats *statistics.Statistics) EngineOption {
	return func(c *engineConfig) {
		c.stats = stats
	}
}

// WithBettingStrategies replaces the betting strategies the engine keeps
// counting for. The advice command lists them in this order.
func WithBettingStrategies(betting ...strategy.Betting) EngineOption {
	return func(c *engineConfig) {
		c.betting = betting
	}
}

// WithPlayingStrategies replaces the playing strategies the engine keeps
// counting for. The advice command lists them in this order.
func WithPlayingStrategies(playing ...strategy.Playing) EngineOption {
	return func(c *engineConfig) {
		c.playing = playing
	}
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}
