package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/tui"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newListCommand creates the list command.
func newListCommand(e *env) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in the order they were added",
		Args:    cobra.NoArgs,
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

			in := usecase.ListTasksInput{}
			if status != "" {
				if in.Status, err = domain.ParseStatus(status); err != nil {
					return fmt.Errorf("%w: %q", err, status)
				}
			}
			out, err := c.ListTasksUseCase().Execute(s, in)
			if err != nil {
				return err
			}
			ui.println(ui.renderer.TaskList(out.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Only show tasks with this status")
	return cmd
}

// newAddCommand creates the add command.
func newAddCommand(e *env) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		Repo        string
		Issue       bool
	}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Long: `Add a task with status Todo.

With --issue the task is also created as a GitHub issue in --repo,
or in the default repository. A failed issue is reported but the
task is kept.

Examples:
  taskflow add "Write release notes" --priority high --due friday
  taskflow add --title "Fix login" --issue --repo octo/demo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Title = args[0]
			}
			priority, err := domain.ParsePriority(opts.Priority)
			if err != nil {
				return fmt.Errorf("%w: %q", err, opts.Priority)
			}

			c, err := e.get()
			if err != nil {
				return err
			}
			ui := newConsole(cmd, c)
			s, err := openSession(cmd.Context(), c, ui, opts.Issue)
			if err != nil {
				return err
			}

			in := usecase.AddTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    priority,
				DueDate:     opts.Due,
				CreateIssue: opts.Issue,
			}
			if opts.Issue {
				repo, err := resolveRepository(s.Config, opts.Repo)
				if err != nil {
					return err
				}
				in.Repository = repo
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), s, in)
			if err != nil {
				if out != nil {
					ui.warnAll(out.Warnings)
				}
				return err
			}
			ui.printf("Created task #%d\n", out.Task.ID)
			if out.Task.HasIssue() {
				ui.printf("Created GitHub issue #%d in %s\n", *out.Task.IssueNumber, in.Repository.FullName())
			}
			ui.warnAll(out.Warnings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", string(domain.PriorityMedium), "Priority (low, medium, high)")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (free-form)")
	cmd.Flags().BoolVar(&opts.Issue, "issue", false, "Also create a GitHub issue")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Repository for --issue (owner/name or display name)")
	return cmd
}

// resolveRepository finds ref among the configured repositories, or the
// default one when ref is empty.
func resolveRepository(cfg *domain.Config, ref string) (*domain.Repository, error) {
	if ref != "" {
		repo, ok := cfg.FindRepository(ref)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, ref)
		}
		return &repo, nil
	}
	if len(cfg.Repositories) == 0 {
		return nil, domain.ErrNoRepositories
	}
	repo := cfg.Repositories[cfg.DefaultRepositoryIndex()]
	return &repo, nil
}

// newStatusCommand creates the status command.
func newStatusCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a task's status",
		Long: `Change a task's status. Any status can move to any other.

Statuses: todo, in-progress, needs-help, done`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[1])
			}

			c, err := e.get()
			if err != nil {
				return err
			}
			ui := newConsole(cmd, c)
			s, err := openSession(cmd.Context(), c, ui, false)
			if err != nil {
				return err
			}

			out, err := c.UpdateTaskStatusUseCase().Execute(s, usecase.UpdateTaskStatusInput{ID: &id, Status: status})
			if err != nil {
				return err
			}
			ui.printf("Task #%d: %s -> %s\n", out.Task.ID, out.OldStatus.Display(), out.Task.Status.Display())
			return nil
		},
	}
}

// newShowCommand creates the show command.
func newShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			c, err := e.get()
			if err != nil {
				return err
			}
			ui := newConsole(cmd, c)
			s, err := openSession(cmd.Context(), c, ui, false)
			if err != nil {
				return err
			}
			if len(s.Config.Repositories) > 0 {
				repo := s.Config.Repositories[s.Config.DefaultRepositoryIndex()]
				s.Current = &repo
			}

			out, err := c.ShowTaskUseCase().Execute(s, usecase.ShowTaskInput{ID: id})
			if err != nil {
				return err
			}
			return printTaskDetail(ui, c, out)
		},
	}
}

func printTaskDetail(ui *console, c *app.Container, out *usecase.ShowTaskOutput) error {
	t := out.Task
	ui.printf("# %d %s %s\n\n", t.ID, t.Title, t.Priority.Stars())
	ui.printf("Status:   %s %s\n", t.Status.Icon(), t.Status.Display())
	ui.printf("Priority: %s\n", t.Priority)
	if t.DueDate != "" {
		ui.printf("Due:      %s\n", t.DueDate)
	}
	ui.printf("Created:  %s\n", t.CreatedAt)
	if t.HasIssue() {
		ui.printf("Issue:    #%d", *t.IssueNumber)
		if out.IssueURL != "" {
			ui.printf(" %s", out.IssueURL)
		}
		ui.println()
	}

	if t.Description == "" {
		return nil
	}
	style := "notty"
	if c.Interactive() {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	body, err := renderer.Render(t.Description)
	if err != nil {
		return fmt.Errorf("render description: %w", err)
	}
	ui.printf("\n%s", body)
	return nil
}

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid task ID: %s", s)
	}
	return id, nil
}

// Board output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type boardExport struct {
	Columns []columnExport `json:"columns" yaml:"columns"`
}

type columnExport struct {
	Status domain.Status `json:"status" yaml:"status"`
	Tasks  []taskExport  `json:"tasks" yaml:"tasks"`
}

type taskExport struct {
	IssueNumber *int            `json:"github_issue_number,omitempty" yaml:"github_issue_number,omitempty"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Priority    domain.Priority `json:"priority" yaml:"priority"`
	DueDate     string          `json:"due_date" yaml:"due_date"`
	CreatedAt   string          `json:"created_at" yaml:"created_at"`
	ID          int             `json:"id" yaml:"id"`
}

func newBoardExport(b domain.Board) boardExport {
	out := boardExport{Columns: make([]columnExport, 0, len(b.Columns))}
	for _, c := range b.Columns {
		col := columnExport{Status: c.Status, Tasks: make([]taskExport, 0, len(c.Tasks))}
		for _, t := range c.Tasks {
			col.Tasks = append(col.Tasks, taskExport{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Priority:    t.Priority,
				DueDate:     t.DueDate,
				IssueNumber: t.IssueNumber,
				CreatedAt:   t.CreatedAt,
			})
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}

// newBoardCommand creates the board command.
func newBoardCommand(e *env) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show tasks grouped by status",
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
			board := c.ShowBoardUseCase().Execute(s)

			switch output {
			case outputText:
				if c.Interactive() {
					ui.println(ui.renderer.Board(board))
				} else {
					ui.printf("%s", tui.PlainBoard(board))
				}
			case outputJSON:
				data, err := json.MarshalIndent(newBoardExport(board), "", "  ")
				if err != nil {
					return fmt.Errorf("marshal board: %w", err)
				}
				ui.println(string(data))
			case outputYAML:
				data, err := yaml.Marshal(newBoardExport(board))
				if err != nil {
					return fmt.Errorf("marshal board: %w", err)
				}
				ui.printf("%s", data)
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}
