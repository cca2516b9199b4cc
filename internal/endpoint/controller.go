package endpoint

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/logger"
)

// Provider persists the configured server URL.
type Provider interface {
	Load() string
	Save(url string) error
}

// Effect is what the host has to do after an update.
type Effect int

const (
	EffectNone Effect = iota
	// EffectRestart asks the host to relaunch the shell so the new URL is loaded.
	EffectRestart
)

func (e Effect) String() string {
	switch e {
	case EffectRestart:
		return "restart"
	default:
		return "none"
	}
}

// Controller reads and updates the server URL.
type Controller struct {
	provider Provider
	log      zerolog.Logger
}

func NewController(provider Provider, log zerolog.Logger) *Controller {
	return &Controller{
		provider: provider,
		log:      logger.Component(log, "endpoint"),
	}
}

// CurrentURL returns the configured server URL.
func (c *Controller) CurrentURL() string {
	return c.provider.Load()
}

// UpdateURL validates and stores candidate. On success the returned effect
// is EffectRestart; the controller never restarts anything itself.
func (c *Controller) UpdateURL(candidate string) (Effect, error) {
	candidate = strings.TrimSpace(candidate)

	if err := Validate(candidate); err != nil {
		c.log.Debug().Str("input", candidate).Err(err).Msg("rejected server url")
		return EffectNone, err
	}

	if err := c.provider.Save(candidate); err != nil {
		c.log.Error().Err(err).Str("url", candidate).Msg("failed to save server url")
		return EffectNone, fmt.Errorf("save server url: %w", err)
	}

	c.log.Info().Str("url", candidate).Msg("server url updated, restart requested")
	return EffectRestart, nil
}
