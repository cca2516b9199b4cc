package shell

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/piltismart/pilti/internal/logger"
)

// Relauncher starts a fresh copy of the running shell. The caller quits the
// current process afterwards.
type Relauncher struct {
	exe  string
	args []string
	log  zerolog.Logger

	command func(name string, args ...string) *exec.Cmd
}

// NewRelauncher relaunches the current executable with its current arguments.
func NewRelauncher(log zerolog.Logger) (*Relauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return &Relauncher{
		exe:     exe,
		args:    os.Args[1:],
		log:     logger.Component(log, "relauncher"),
		command: exec.Command,
	}, nil
}

func (r *Relauncher) Relaunch() error {
	cmd := r.command(r.exe, r.args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("relaunch %s: %w", r.exe, err)
	}

	r.log.Info().Int("pid", cmd.Process.Pid).Msg("shell relaunched")
	return cmd.Process.Release()
}
