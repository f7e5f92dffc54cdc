package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/tui"
	"github.com/runoshun/taskflow/internal/usecase"
)

// runBoardFunc shows the board viewer, allowing it to be mocked in tests.
var runBoardFunc = tui.RunBoard

// Main menu entries, in display order.
const (
	menuAddTask = iota
	menuListTasks
	menuUpdateTask
	menuVisualize
	menuSwitchRepo
	menuAddRepo
	menuExit
)

var menuOptions = []string{
	"Add task",
	"List tasks",
	"Update task",
	"Visualize project",
	"Switch repository",
	"Add repository",
	"Exit",
}

// Visualize submenu entries, in display order.
const (
	visualizeBoard = iota
	visualizeOpen
	visualizeIssue
	visualizeBack
)

var visualizeOptions = []string{
	"View board",
	"Open project in browser",
	"Create project tracking issue",
	"Back",
}

// taskTitleWidth aligns titles in the task picker.
const taskTitleWidth = 32

// menu runs the interactive session. It owns the session state for the
// life of the process and handles one operation at a time.
type menu struct {
	ctx     context.Context
	c       *app.Container
	s       *usecase.Session
	ui      *console
	prompts domain.Prompter
}

func runInteractive(cmd *cobra.Command, c *app.Container) error {
	if !c.Interactive() {
		return fmt.Errorf("%w; see 'taskflow --help' for commands", domain.ErrNotInteractive)
	}

	ui := newConsole(cmd, c)
	s, err := openSession(cmd.Context(), c, ui, true)
	if err != nil {
		return err
	}

	m := &menu{ctx: cmd.Context(), c: c, s: s, ui: ui, prompts: c.Prompter}
	err = m.run()
	if errors.Is(err, domain.ErrPromptAborted) {
		return nil
	}
	return err
}

func (m *menu) run() error {
	if m.s.NeedsSetup() {
		if err := m.firstTimeSetup(); err != nil {
			return err
		}
	}
	if err := m.selectRepository(); err != nil {
		return err
	}

	for {
		choice, err := m.prompts.Select(m.title(), menuOptions, 0)
		if err != nil {
			return err
		}
		if choice == menuExit {
			m.ui.println("Goodbye!")
			return nil
		}
		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, domain.ErrPromptAborted) {
				continue
			}
			m.ui.error(err)
		}
	}
}

func (m *menu) title() string {
	if m.s.Current == nil {
		return "What would you like to do?"
	}
	return fmt.Sprintf("What would you like to do? [%s]", m.s.Current.Label())
}

func (m *menu) dispatch(choice int) error {
	switch choice {
	case menuAddTask:
		return m.addTask()
	case menuListTasks:
		return m.listTasks()
	case menuUpdateTask:
		return m.updateTask()
	case menuVisualize:
		return m.visualize()
	case menuSwitchRepo:
		return m.selectRepository()
	case menuAddRepo:
		return m.addRepository()
	}
	return nil
}

func (m *menu) firstTimeSetup() error {
	if !m.s.Config.HasToken() {
		m.ui.println("Welcome to taskflow! Let's connect to GitHub.")
		if err := m.setToken(); err != nil {
			return err
		}
	}
	return m.addRepository()
}

func (m *menu) setToken() error {
	for {
		token, err := m.prompts.Secret("GitHub personal access token")
		if err != nil {
			return err
		}
		out, err := m.c.SetTokenUseCase().Execute(m.ctx, m.s, usecase.SetTokenInput{Token: token})
		if errors.Is(err, domain.ErrEmptyToken) {
			m.ui.error(err)
			continue
		}
		if err != nil {
			return err
		}
		m.ui.warnAll(out.Warnings)
		if out.Connected {
			m.ui.success("Connected to GitHub.")
		}
		return nil
	}
}

// selectRepository asks which repository to work on, adding one first
// when none are configured.
func (m *menu) selectRepository() error {
	for len(m.s.Config.Repositories) == 0 {
		m.ui.warn("No repositories configured. Add one to continue.")
		if err := m.addRepository(); err != nil {
			if !canRetryAdd(err) {
				return err
			}
			m.ui.error(err)
		}
	}

	initial := m.s.Config.DefaultRepositoryIndex()
	if m.s.Current != nil {
		for i, r := range m.s.Config.Repositories {
			if r == *m.s.Current {
				initial = i
				break
			}
		}
	}
	idx, err := m.prompts.Select("Select a repository", usecase.RepositoryChoices(m.s.Config), initial)
	if err != nil {
		return err
	}
	repo, err := m.c.SelectRepositoryUseCase().Execute(m.s, usecase.SelectRepositoryInput{Index: idx})
	if err != nil {
		return err
	}
	m.ui.printf("Working on %s\n", repo.Label())
	return nil
}

func (m *menu) addRepository() error {
	if m.s.Tracker == nil {
		m.ui.warn("Adding a repository needs a GitHub connection.")
		ok, err := m.prompts.Confirm("Enter a GitHub token now?", true)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNoTracker
		}
		if err := m.setToken(); err != nil {
			return err
		}
		if m.s.Tracker == nil {
			return domain.ErrNoTracker
		}
	}

	var owner, name string
	if m.c.Remotes != nil {
		owner, name, _ = m.c.Remotes.Detect(m.c.Config.WorkDir)
	}
	owner, err := m.prompts.Input("Repository owner", owner, required("owner"))
	if err != nil {
		return err
	}
	name, err = m.prompts.Input("Repository name", name, required("name"))
	if err != nil {
		return err
	}
	display, err := m.prompts.Input("Display name", name, nil)
	if err != nil {
		return err
	}

	out, err := m.c.AddRepositoryUseCase().Execute(m.ctx, m.s, usecase.AddRepositoryInput{
		Owner:       owner,
		Name:        name,
		DisplayName: display,
	})
	if err != nil {
		return err
	}
	m.ui.success("Added repository %s", out.Repository.Label())
	return nil
}

func (m *menu) addTask() error {
	title, err := m.prompts.Input("Task title", "", required("title"))
	if err != nil {
		return err
	}
	description, err := m.prompts.Input("Description (optional)", "", nil)
	if err != nil {
		return err
	}
	priorities := domain.AllPriorities()
	labels := make([]string, len(priorities))
	for i, p := range priorities {
		labels[i] = fmt.Sprintf("%s %s", p, p.Stars())
	}
	pi, err := m.prompts.Select("Priority", labels, 0)
	if err != nil {
		return err
	}
	due, err := m.prompts.Input("Due date (optional)", "", nil)
	if err != nil {
		return err
	}
	createIssue := false
	if m.s.CanMirror() {
		createIssue, err = m.prompts.Confirm("Create a GitHub issue for this task?", true)
		if err != nil {
			return err
		}
	}

	out, err := m.c.AddTaskUseCase().Execute(m.ctx, m.s, usecase.AddTaskInput{
		Title:       title,
		Description: description,
		Priority:    priorities[pi],
		DueDate:     due,
		CreateIssue: createIssue,
	})
	if err != nil {
		if out != nil {
			m.ui.warnAll(out.Warnings)
		}
		return err
	}
	m.ui.success("Task #%d added.", out.Task.ID)
	if out.Task.HasIssue() {
		m.ui.success("Created GitHub issue #%d.", *out.Task.IssueNumber)
	}
	m.ui.warnAll(out.Warnings)
	return nil
}

func (m *menu) listTasks() error {
	out, err := m.c.ListTasksUseCase().Execute(m.s, usecase.ListTasksInput{})
	if err != nil {
		return err
	}
	m.ui.println(m.ui.renderer.TaskList(out.Tasks))
	return nil
}

func (m *menu) updateTask() error {
	if len(m.s.Tasks) == 0 {
		m.ui.println("No tasks to update.")
		return nil
	}
	labels := make([]string, len(m.s.Tasks))
	for i, t := range m.s.Tasks {
		labels[i] = fmt.Sprintf("#%-3d %s [%s]", t.ID, tui.Label(t.Title, taskTitleWidth), t.Status.Display())
	}
	pos, err := m.prompts.Select("Select a task", labels, 0)
	if err != nil {
		return err
	}

	statuses := domain.AllStatuses()
	names := make([]string, len(statuses))
	current := 0
	for i, st := range statuses {
		names[i] = st.Icon() + " " + st.Display()
		if st == m.s.Tasks[pos].Status {
			current = i
		}
	}
	si, err := m.prompts.Select("New status", names, current)
	if err != nil {
		return err
	}

	out, err := m.c.UpdateTaskStatusUseCase().Execute(m.s, usecase.UpdateTaskStatusInput{
		Position: &pos,
		Status:   statuses[si],
	})
	if err != nil {
		return err
	}
	m.ui.success("Task #%d: %s -> %s", out.Task.ID, out.OldStatus.Display(), out.Task.Status.Display())
	return nil
}

func (m *menu) visualize() error {
	for {
		choice, err := m.prompts.Select("Visualize project", visualizeOptions, 0)
		if err != nil {
			return err
		}
		switch choice {
		case visualizeBoard:
			err = m.viewBoard()
		case visualizeOpen:
			err = m.openProject()
		case visualizeIssue:
			err = m.createTrackingIssue()
		case visualizeBack:
			return nil
		}
		if err != nil {
			if errors.Is(err, domain.ErrPromptAborted) {
				return err
			}
			m.ui.error(err)
		}
	}
}

func (m *menu) viewBoard() error {
	board := m.c.ShowBoardUseCase().Execute(m.s)
	title := "Board"
	if m.s.Current != nil {
		title = "Board: " + m.s.Current.DisplayName
	}
	return runBoardFunc(board, title, m.ui.renderer)
}

func (m *menu) openProject() error {
	out, err := m.c.OpenProjectUseCase().Execute(m.s)
	if err != nil {
		return err
	}
	m.ui.warnAll(out.Warnings)
	if out.Opened {
		m.ui.success("Opened %s", out.URL)
		return nil
	}
	m.ui.println("Project URL: " + out.URL)
	return nil
}

func (m *menu) createTrackingIssue() error {
	if !m.s.CanMirror() {
		m.ui.warn("Creating a tracking issue needs a GitHub connection and a repository.")
		return nil
	}
	ok, err := m.prompts.Confirm(fmt.Sprintf("Create issue %q in %s?",
		usecase.ProjectIssueTitle(*m.s.Current), m.s.Current.FullName()), true)
	if err != nil || !ok {
		return err
	}
	out, err := m.c.BootstrapProjectUseCase().Execute(m.ctx, m.s)
	if err != nil {
		m.ui.warn(err.Error())
		return nil
	}
	m.ui.success("Created tracking issue #%d: %s", out.IssueNumber, out.Title)
	return nil
}

// canRetryAdd reports whether adding a repository may be asked again.
func canRetryAdd(err error) bool {
	return errors.Is(err, domain.ErrNoTracker) ||
		errors.Is(err, domain.ErrRepositoryUnreachable) ||
		errors.Is(err, domain.ErrInvalidRepository)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
