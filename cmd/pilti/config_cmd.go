package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/piltismart/pilti/internal/config"
	"github.com/piltismart/pilti/internal/logger"
	"github.com/piltismart/pilti/internal/ui/editor"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the server URL",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the configured server URL",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				opts := config.LoadOptions(v)
				controller, _, err := newController(opts, logger.New(cmd.ErrOrStderr(), opts.Debug))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), controller.CurrentURL())
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <url>",
			Short: "Change the server URL",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				opts := config.LoadOptions(v)
				controller, _, err := newController(opts, logger.New(cmd.ErrOrStderr(), opts.Debug))
				if err != nil {
					return err
				}
				if _, err := controller.UpdateURL(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Server set to %s. Restart %s to load it.\n", controller.CurrentURL(), config.AppName)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.LoadOptions(v).SettingsPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Change the server URL interactively",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				opts := config.LoadOptions(v)

				// stderr belongs to the editor while it runs
				log := zerolog.Nop()
				if opts.Debug {
					f, err := tea.LogToFile("debug.log", "debug")
					if err != nil {
						return fmt.Errorf("failed to log to file: %w", err)
					}
					defer f.Close()
					log = logger.New(f, true)
				}

				controller, st, err := newController(opts, log)
				if err != nil {
					return err
				}

				program := tea.NewProgram(editor.NewModel(controller, st.Recent()))
				if _, err := program.Run(); err != nil {
					return fmt.Errorf("failed to run editor: %w", err)
				}
				return nil
			},
		},
	)
	return cmd
}
