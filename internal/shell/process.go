package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/logger"
)

// ProcessLauncher runs each window as a child process of the current
// executable. Wails v2 hosts a single window per process.
type ProcessLauncher struct {
	exe string
	log zerolog.Logger

	// command builds the child command; replaced in tests.
	command func(name string, args ...string) *exec.Cmd
}

func NewProcessLauncher(log zerolog.Logger) (*ProcessLauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return &ProcessLauncher{
		exe:     exe,
		log:     logger.Component(log, "launcher"),
		command: exec.Command,
	}, nil
}

func (l *ProcessLauncher) Launch(spec WindowSpec, closed func(exitCode int)) (Window, error) {
	cmd, err := l.start(spec.ID)
	if err != nil {
		return nil, err
	}

	w := &processWindow{launcher: l, id: spec.ID, closed: closed, live: 1}
	w.watch(cmd)
	return w, nil
}

func (l *ProcessLauncher) start(id string) (*exec.Cmd, error) {
	cmd := l.command(l.exe, WindowArgs(id)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s window: %w", id, err)
	}
	l.log.Debug().Str("window", id).Int("pid", cmd.Process.Pid).Msg("window process started")
	return cmd, nil
}

// processWindow is every process started for one window: the first launch
// and each focus request. A focus process normally hands off to the live
// window through its single-instance lock and exits; if the live window is
// already gone it becomes the window itself. The window is closed once all
// of its processes have exited.
type processWindow struct {
	launcher *ProcessLauncher
	id       string
	closed   func(exitCode int)

	mu      sync.Mutex
	live    int
	restart bool
}

func (w *processWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.live == 0 {
		return ErrWindowClosed
	}

	cmd, err := w.launcher.start(w.id)
	if err != nil {
		return err
	}
	w.live++
	w.watch(cmd)
	return nil
}

func (w *processWindow) watch(cmd *exec.Cmd) {
	go func() {
		w.exited(exitCode(cmd.Wait(), cmd))
	}()
}

func (w *processWindow) exited(code int) {
	w.mu.Lock()
	w.live--
	if code == ExitRestart {
		w.restart = true
	}
	if w.live > 0 {
		w.mu.Unlock()
		return
	}
	if w.restart {
		code = ExitRestart
	}
	w.mu.Unlock()

	w.closed(code)
}

func exitCode(err error, cmd *exec.Cmd) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}
