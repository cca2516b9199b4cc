package main

import (
	"context"
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/piltismart/pilti/internal/config"
	"github.com/piltismart/pilti/internal/endpoint"
	"github.com/piltismart/pilti/internal/logger"
	"github.com/piltismart/pilti/internal/shell"
	"github.com/piltismart/pilti/internal/store"
)

func newController(opts config.Options, log zerolog.Logger) (*endpoint.Controller, *store.Store, error) {
	st, err := store.New(opts, log)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("path", st.Path()).Msg("settings location")
	return endpoint.NewController(st, log), st, nil
}

// mainShell wires the main window: menu, settings window, bootstrap and
// relaunch.
type mainShell struct {
	app        *App
	windows    *shell.WindowManager
	boot       *shell.Bootstrap
	relauncher *shell.Relauncher
	log        zerolog.Logger
}

func (s *mainShell) onMenu(id string) {
	switch id {
	case shell.ChangeServerItem:
		if err := s.windows.Open(shell.SettingsWindow); err != nil {
			s.log.Error().Err(err).Msg("failed to open settings window")
		}
	}
}

func (s *mainShell) domReady(ctx context.Context) {
	if err := s.boot.Start(shell.MainWindowFromContext(ctx)); err != nil {
		s.log.Fatal().Err(err).Msg("failed to start shell")
	}
}

// restart relaunches the executable and quits this process. A failed
// relaunch is fatal.
func (s *mainShell) restart() {
	if err := s.relauncher.Relaunch(); err != nil {
		s.log.Fatal().Err(err).Msg("failed to restart shell")
	}
	runtime.Quit(s.app.ctx)
}

func runShell(opts config.Options) error {
	log := logger.NewStderr(opts.Debug)

	controller, _, err := newController(opts, log)
	if err != nil {
		return err
	}

	launcher, err := shell.NewProcessLauncher(log)
	if err != nil {
		return err
	}
	relauncher, err := shell.NewRelauncher(log)
	if err != nil {
		return err
	}

	s := &mainShell{
		windows:    shell.NewWindowManager(launcher, log),
		boot:       shell.NewBootstrap(controller, log),
		relauncher: relauncher,
		log:        logger.Component(log, "shell"),
	}
	s.app = NewApp(controller, log, s.restart)
	s.windows.OnRestart = s.restart

	mainAssets, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		return err
	}

	wailsLog := logger.NewWailsLogger(log)
	return wails.Run(&options.App{
		Title:  config.AppName,
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: mainAssets,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Menu:             shell.BuildMenu(shell.DefaultMenu(), s.onMenu),
		Logger:           wailsLog,
		LogLevel:         wailsLog.Level(),
		OnStartup:        s.app.startup,
		OnDomReady:       s.domReady,
		Bind: []interface{}{
			s.app,
		},
	})
}

func runWindow(opts config.Options, id string) error {
	spec, ok := shell.LookupWindow(id)
	if !ok {
		return fmt.Errorf("unknown window %q", id)
	}

	log := logger.NewStderr(opts.Debug)
	controller, st, err := newController(opts, log)
	if err != nil {
		return err
	}

	var restartRequested atomic.Bool
	var app *App
	app = NewApp(controller, log, func() {
		restartRequested.Store(true)
		runtime.Quit(app.ctx)
	})

	windowAssets, err := fs.Sub(assets, "frontend/dist/"+spec.ID)
	if err != nil {
		return err
	}

	wailsLog := logger.NewWailsLogger(log)
	err = wails.Run(&options.App{
		Title:         spec.Title,
		Width:         spec.Width,
		Height:        spec.Height,
		DisableResize: !spec.Resizable,
		AssetServer: &assetserver.Options{
			Assets: windowAssets,
		},
		Logger:   wailsLog,
		LogLevel: wailsLog.Level(),
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			if spec.Center {
				runtime.WindowCenter(ctx)
			}
			if spec.Focused {
				shell.Raise(ctx)
			}
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: spec.InstanceID(st.Path()),
			OnSecondInstanceLaunch: func(options.SecondInstanceData) {
				shell.Raise(app.ctx)
			},
		},
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		return err
	}
	if restartRequested.Load() {
		return errRestartRequested
	}
	return nil
}
