package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/endpoint"
	"github.com/piltismart/pilti/internal/logger"
)

// App is bound to the window's content layer.
type App struct {
	ctx        context.Context
	controller *endpoint.Controller
	log        zerolog.Logger

	// restart performs the relaunch requested by a successful update.
	restart func()
}

// NewApp creates a new App application struct
func NewApp(controller *endpoint.Controller, log zerolog.Logger, restart func()) *App {
	return &App{
		controller: controller,
		log:        logger.Component(log, "app"),
		restart:    restart,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// GetCurrentURL returns the configured server URL.
func (a *App) GetCurrentURL() string {
	return a.controller.CurrentURL()
}

// UpdateURL stores url and restarts the shell. The error message is shown
// to the user as is.
func (a *App) UpdateURL(url string) error {
	effect, err := a.controller.UpdateURL(url)
	if err != nil {
		return err
	}

	if effect == endpoint.EffectRestart && a.restart != nil {
		a.log.Info().Msg("restarting shell")
		a.restart()
	}
	return nil
}
