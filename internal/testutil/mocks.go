// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/taskflow/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Saved keeps a deep copy of every list passed to Save.
type MockTaskRepository struct {
	LoadErr error
	SaveErr error
	Tasks   []*domain.Task
	Saved   [][]*domain.Task
}

// NewMockTaskRepository creates an empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{Tasks: []*domain.Task{}}
}

// Load returns the stored tasks.
func (m *MockTaskRepository) Load() ([]*domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneTasks(m.Tasks), nil
}

// Save stores a copy of tasks.
func (m *MockTaskRepository) Save(tasks []*domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = cloneTasks(tasks)
	m.Saved = append(m.Saved, cloneTasks(tasks))
	return nil
}

func cloneTasks(tasks []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		c := *t
		if t.IssueNumber != nil {
			n := *t.IssueNumber
			c.IssueNumber = &n
		}
		out = append(out, &c)
	}
	return out
}

// MockConfigStore is a test double for domain.ConfigStore.
type MockConfigStore struct {
	LoadErr error
	SaveErr error
	Config  *domain.Config
	Saves   int
}

// NewMockConfigStore creates a MockConfigStore holding the default config.
func NewMockConfigStore() *MockConfigStore {
	return &MockConfigStore{Config: domain.NewDefaultConfig()}
}

// LoadOrCreate returns a copy of the stored config.
func (m *MockConfigStore) LoadOrCreate() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return cloneConfig(m.Config), nil
}

// Save stores a copy of cfg.
func (m *MockConfigStore) Save(cfg *domain.Config) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Config = cloneConfig(cfg)
	m.Saves++
	return nil
}

func cloneConfig(cfg *domain.Config) *domain.Config {
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	var out domain.Config
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// MockSettingsLoader is a test double for domain.SettingsLoader.
type MockSettingsLoader struct {
	Err      error
	Settings *domain.Settings
}

// Load returns the configured settings or defaults.
func (m *MockSettingsLoader) Load() (*domain.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		return domain.NewDefaultSettings(), nil
	}
	return m.Settings, nil
}

// CreatedIssue records a CreateIssue call.
type CreatedIssue struct {
	Owner string
	Name  string
	Title string
	Body  string
}

// ErrMockRemote is returned by mocks configured to fail.
var ErrMockRemote = errors.New("remote failure")

// MockTracker is a test double for domain.IssueTracker.
// Repositories lists the "owner/name" pairs that verify; nil accepts all.
type MockTracker struct {
	VerifyErr    error
	CreateErr    error
	Repositories []string
	Created      []CreatedIssue
	Verified     []string
	NextNumber   int
}

// NewMockTracker creates a MockTracker numbering issues from 1.
func NewMockTracker() *MockTracker {
	return &MockTracker{NextNumber: 1}
}

// VerifyRepository records the call and reports reachability.
func (m *MockTracker) VerifyRepository(_ context.Context, owner, name string) error {
	full := owner + "/" + name
	m.Verified = append(m.Verified, full)
	if m.VerifyErr != nil {
		return m.VerifyErr
	}
	if m.Repositories == nil {
		return nil
	}
	for _, r := range m.Repositories {
		if r == full {
			return nil
		}
	}
	return fmt.Errorf("%s: %w", full, ErrMockRemote)
}

// CreateIssue records the issue and returns the next number.
func (m *MockTracker) CreateIssue(_ context.Context, owner, name, title, body string) (int, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Created = append(m.Created, CreatedIssue{Owner: owner, Name: name, Title: title, Body: body})
	n := m.NextNumber
	m.NextNumber++
	return n, nil
}

// MockConnector is a test double for domain.TrackerConnector.
type MockConnector struct {
	Err     error
	Tracker domain.IssueTracker
	Tokens  []string
}

// Connect records the token and returns the configured tracker.
func (m *MockConnector) Connect(_ context.Context, token string) (domain.IssueTracker, error) {
	m.Tokens = append(m.Tokens, token)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Tracker == nil {
		return NewMockTracker(), nil
	}
	return m.Tracker, nil
}

// MockExecutor is a test double for domain.CommandExecutor.
type MockExecutor struct {
	Err      error
	Output   []byte
	Commands []*domain.ExecCommand
}

// Execute records the command.
func (m *MockExecutor) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	return m.Output, m.Err
}

// MockClipboard is a test double for domain.Clipboard.
type MockClipboard struct {
	Err  error
	Text string
}

// WriteAll stores text.
func (m *MockClipboard) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

// MockRemoteDetector is a test double for domain.RemoteDetector.
type MockRemoteDetector struct {
	Err   error
	Owner string
	Name  string
}

// Detect returns the configured owner and name.
func (m *MockRemoteDetector) Detect(_ string) (string, string, error) {
	return m.Owner, m.Name, m.Err
}

// ErrScriptExhausted is returned by ScriptedPrompter when no answers remain.
var ErrScriptExhausted = errors.New("scripted prompter: no answers left")

// ScriptedPrompter is a test double for domain.Prompter that replays
// answers in order. Input and Secret take a string, Select an int and
// Confirm a bool. An error answer is returned as the prompt's error.
type ScriptedPrompter struct {
	Answers  []any
	Asked    []string
	Options  [][]string // Options of each Select call
	Initials []int      // Initial index of each Select call
	Values   []string   // Pre-filled value of each Input call
}

// NewScriptedPrompter creates a prompter that replays answers.
func NewScriptedPrompter(answers ...any) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

func (p *ScriptedPrompter) next(title string) (any, error) {
	p.Asked = append(p.Asked, title)
	if len(p.Answers) == 0 {
		return nil, fmt.Errorf("%w (asked %q)", ErrScriptExhausted, title)
	}
	a := p.Answers[0]
	p.Answers = p.Answers[1:]
	if err, ok := a.(error); ok {
		return nil, err
	}
	return a, nil
}

// Input returns the next string answer, or value when the answer is empty.
// validate is applied like an interactive prompt would.
func (p *ScriptedPrompter) Input(title, value string, validate func(string) error) (string, error) {
	p.Values = append(p.Values, value)
	a, err := p.next(title)
	if err != nil {
		return "", err
	}
	s, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("scripted prompter: %q wants a string, got %T", title, a)
	}
	if s == "" {
		s = value
	}
	if validate != nil {
		if err := validate(s); err != nil {
			return "", err
		}
	}
	return s, nil
}

// Secret returns the next string answer.
func (p *ScriptedPrompter) Secret(title string) (string, error) {
	a, err := p.next(title)
	if err != nil {
		return "", err
	}
	s, ok := a.(string)
	if !ok {
		return "", fmt.Errorf("scripted prompter: %q wants a string, got %T", title, a)
	}
	return s, nil
}

// Select returns the next int answer.
func (p *ScriptedPrompter) Select(title string, options []string, initial int) (int, error) {
	p.Options = append(p.Options, options)
	p.Initials = append(p.Initials, initial)
	a, err := p.next(title)
	if err != nil {
		return 0, err
	}
	n, ok := a.(int)
	if !ok {
		return 0, fmt.Errorf("scripted prompter: %q wants an int, got %T", title, a)
	}
	if n < 0 || n >= len(options) {
		return 0, fmt.Errorf("scripted prompter: %q has no option %d", title, n)
	}
	return n, nil
}

// Confirm returns the next bool answer.
func (p *ScriptedPrompter) Confirm(title string, _ bool) (bool, error) {
	a, err := p.next(title)
	if err != nil {
		return false, err
	}
	b, ok := a.(bool)
	if !ok {
		return false, fmt.Errorf("scripted prompter: %q wants a bool, got %T", title, a)
	}
	return b, nil
}

// Remaining returns the number of unused answers.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.Answers)
}

var _ domain.Prompter = (*ScriptedPrompter)(nil)
