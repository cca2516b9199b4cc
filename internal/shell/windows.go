package shell

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/logger"
)

// ErrWindowClosed is returned by Focus when the window has already gone
// away and its close notification is still pending.
var ErrWindowClosed = errors.New("window closed")

// Window is a live secondary window.
type Window interface {
	Focus() error
}

// Launcher creates windows. closed is invoked from another goroutine once
// the window is gone, with the window's exit status.
type Launcher interface {
	Launch(spec WindowSpec, closed func(exitCode int)) (Window, error)
}

// openWindow is the manager's handle on a launched window; its identity
// tells a stale close notification apart from the current window's.
type openWindow struct {
	win Window
}

// WindowManager keeps at most one window per spec ID.
type WindowManager struct {
	launcher Launcher
	log      zerolog.Logger

	mu   sync.Mutex
	open map[string]*openWindow

	// OnRestart is called when a window closes with ExitRestart.
	OnRestart func()
}

func NewWindowManager(launcher Launcher, log zerolog.Logger) *WindowManager {
	return &WindowManager{
		launcher: launcher,
		log:      logger.Component(log, "windows"),
		open:     map[string]*openWindow{},
	}
}

// Open shows the window described by spec, focusing it if it already exists.
func (m *WindowManager) Open(spec WindowSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ow, ok := m.open[spec.ID]; ok {
		m.log.Debug().Str("window", spec.ID).Msg("window already open, focusing")
		err := ow.win.Focus()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrWindowClosed):
			delete(m.open, spec.ID)
		default:
			return fmt.Errorf("focus window %q: %w", spec.ID, err)
		}
	}

	ow := &openWindow{}
	w, err := m.launcher.Launch(spec, func(exitCode int) {
		m.closed(spec.ID, ow, exitCode)
	})
	if err != nil {
		return fmt.Errorf("launch window %q: %w", spec.ID, err)
	}

	ow.win = w
	m.open[spec.ID] = ow
	m.log.Info().Str("window", spec.ID).Msg("window opened")
	return nil
}

// isOpen reports whether a window with id is currently tracked.
func (m *WindowManager) isOpen(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.open[id]
	return ok
}

func (m *WindowManager) closed(id string, ow *openWindow, exitCode int) {
	m.mu.Lock()
	if cur, ok := m.open[id]; ok && cur == ow {
		delete(m.open, id)
	}
	onRestart := m.OnRestart
	m.mu.Unlock()

	m.log.Info().Str("window", id).Int("exitCode", exitCode).Msg("window closed")

	if exitCode == ExitRestart && onRestart != nil {
		onRestart()
	}
}
