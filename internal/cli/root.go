// Package cli provides the command-line interface for taskflow.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(configDir string) (*app.Container, error)

// env hands the container to commands. It is created lazily so the
// --config-dir flag can choose where it lives.
type env struct {
	newContainer ContainerFactory
	container    *app.Container
	configDir    string
}

func (e *env) get() (*app.Container, error) {
	if e.container == nil {
		c, err := e.newContainer(e.configDir)
		if err != nil {
			return nil, err
		}
		e.container = c
	}
	return e.container, nil
}

func (e *env) close() {
	if e.container != nil {
		_ = e.container.Close()
	}
}

// NewRootCommand creates the root command for taskflow.
// Without a subcommand it runs the interactive menu.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	e := &env{newContainer: newContainer}
	return newRootCommand(e, version)
}

func newRootCommand(e *env, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskflow",
		Short: "Track tasks locally and mirror them to GitHub issues",
		Long: `taskflow keeps a personal task list on disk and can mirror
each task to an issue in one of your GitHub repositories.

Run without arguments for the interactive menu.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.get()
			if err != nil {
				return err
			}
			return runInteractive(cmd, c)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			e.close()
		},
	}

	root.PersistentFlags().StringVar(&e.configDir, "config-dir", "", "Directory for config and task files (default: user config dir)")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	listCmd := newListCommand(e)
	listCmd.GroupID = groupTask

	addCmd := newAddCommand(e)
	addCmd.GroupID = groupTask

	statusCmd := newStatusCommand(e)
	statusCmd.GroupID = groupTask

	showCmd := newShowCommand(e)
	showCmd.GroupID = groupTask

	boardCmd := newBoardCommand(e)
	boardCmd.GroupID = groupTask

	repoCmd := newRepoCommand(e)
	repoCmd.GroupID = groupSetup

	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		listCmd,
		addCmd,
		statusCmd,
		showCmd,
		boardCmd,
		repoCmd,
		configCmd,
	)

	return root
}
