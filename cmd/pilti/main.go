package main

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piltismart/pilti/internal/config"
	"github.com/piltismart/pilti/internal/shell"
)

//go:embed all:frontend/dist
var assets embed.FS

// errRestartRequested ends a window process that asks the shell to relaunch.
var errRestartRequested = errors.New("restart requested")

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var window string

	cmd := &cobra.Command{
		Use:           "pilti",
		Short:         "Desktop shell for the Pilti web application",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.LoadOptions(v)
			if window != "" {
				return runWindow(opts, window)
			}
			return runShell(opts)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging (PILTI_DEBUG)")
	cmd.PersistentFlags().Bool("dev", false, "use the development config directory (PILTI_DEV)")
	cmd.PersistentFlags().String("config-dir", "", "directory holding settings.json (PILTI_CONFIG_DIR)")
	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("dev", cmd.PersistentFlags().Lookup("dev"))
	_ = v.BindPFlag("config_dir", cmd.PersistentFlags().Lookup("config-dir"))

	cmd.Flags().StringVar(&window, "window", "", "run a secondary window")
	_ = cmd.Flags().MarkHidden("window")

	cmd.AddCommand(newConfigCmd(v))
	return cmd
}

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errRestartRequested):
		os.Exit(shell.ExitRestart)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
