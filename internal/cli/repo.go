package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newRepoCommand creates the repo command group.
func newRepoCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage GitHub repositories",
	}
	cmd.AddCommand(newRepoListCommand(e), newRepoAddCommand(e))
	return cmd
}

func newRepoListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured repositories",
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
			if len(s.Config.Repositories) == 0 {
				ui.println("No repositories configured. Add one with 'taskflow repo add owner/name'.")
				return nil
			}
			def := s.Config.DefaultRepositoryIndex()
			for i, label := range usecase.RepositoryChoices(s.Config) {
				marker := " "
				if i == def {
					marker = "*"
				}
				ui.printf("%s %s\n", marker, label)
			}
			return nil
		},
	}
}

func newRepoAddCommand(e *env) *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "add [owner/name]",
		Short: "Verify and add a GitHub repository",
		Long: `Verify a repository is reachable with the configured token and add it.

Without an argument, the origin remote of the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.get()
			if err != nil {
				return err
			}

			var owner, name string
			if len(args) == 1 {
				owner, name, err = splitRepository(args[0])
				if err != nil {
					return err
				}
			} else {
				owner, name, err = c.Remotes.Detect(c.Config.WorkDir)
				if err != nil {
					return fmt.Errorf("no repository given and none detected: %w", err)
				}
			}

			ui := newConsole(cmd, c)
			s, err := openSession(cmd.Context(), c, ui, true)
			if err != nil {
				return err
			}
			out, err := c.AddRepositoryUseCase().Execute(cmd.Context(), s, usecase.AddRepositoryInput{
				Owner:       owner,
				Name:        name,
				DisplayName: displayName,
			})
			if err != nil {
				return err
			}
			ui.printf("Added repository %s\n", out.Repository.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "Label shown in menus (default: repository name)")
	return cmd
}

func splitRepository(ref string) (string, string, error) {
	owner, name, ok := strings.Cut(ref, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: %q (want owner/name)", domain.ErrInvalidRepository, ref)
	}
	return owner, name, nil
}
