package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration files and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.get()
			if err != nil {
				return err
			}
			ui := newConsole(cmd, c)
			s, err := openSession(cmd.Context(), c, ui, false)
			if err != nil {
				return err
			}
			out, err := c.ShowConfigUseCase().Execute(usecase.ShowConfigInput{
				Session:   s,
				ConfigDir: c.Config.ConfigDir,
			})
			if err != nil {
				return err
			}

			settingsState := "(not found, using defaults)"
			if out.SettingsExists {
				settingsState = ""
			}
			token := "not set"
			if out.HasToken {
				token = "set"
			}
			ui.printf("Config:    %s\n", out.ConfigPath)
			ui.printf("Tasks:     %s\n", out.TasksPath)
			ui.printf("Settings:  %s %s\n", out.SettingsPath, settingsState)
			ui.printf("Log:       %s\n", out.LogPath)
			ui.printf("Token:     %s\n", token)
			ui.printf("Repositories: %d\n", len(out.Repositories))
			ui.println()
			ui.println("[log]")
			ui.printf("level = %q\n", out.Settings.Log.Level)
			ui.println("[github]")
			ui.printf("api_url = %q\n", out.Settings.GitHub.APIURL)
			ui.printf("web_url = %q\n", out.Settings.GitHub.WebURL)
			ui.println("[display]")
			ui.printf("date_format = %q\n", out.Settings.Display.DateFormat)
			ui.printf("column_width = %d\n", out.Settings.Display.ColumnWidth)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCommand(e))
	return cmd
}

func newConfigInitCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a settings file template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.get()
			if err != nil {
				return err
			}
			out, err := c.InitSettingsUseCase().Execute()
			if err != nil {
				return fmt.Errorf("%w: %s", err, c.Config.SettingsPath)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}
}
