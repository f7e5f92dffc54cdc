// Package prompt implements interactive terminal prompts with huh.
package prompt

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/runoshun/taskflow/internal/domain"
)

// Huh asks questions on the terminal.
type Huh struct {
	in         io.Reader // nil = stdin
	out        io.Writer // nil = stdout
	accessible bool
}

// New creates a Huh prompter. Accessible mode drops the full-screen
// widgets for plain line prompts.
func New(accessible bool) *Huh {
	return &Huh{accessible: accessible}
}

// WithIO sets the reader and writer prompts use instead of the terminal.
func (h *Huh) WithIO(in io.Reader, out io.Writer) *Huh {
	h.in = in
	h.out = out
	return h
}

// Input asks for a line of text. value pre-fills the answer.
func (h *Huh) Input(title, value string, validate func(string) error) (string, error) {
	answer := value
	field := huh.NewInput().
		Title(title).
		Value(&answer)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := h.run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Secret asks for text without echoing it.
func (h *Huh) Secret(title string) (string, error) {
	var answer string
	field := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&answer)
	if err := h.run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Select asks the user to pick one of options and returns its index.
func (h *Huh) Select(title string, options []string, initial int) (int, error) {
	choice := initial
	opts := make([]huh.Option[int], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i))
	}
	field := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice)
	if err := h.run(field); err != nil {
		return 0, err
	}
	return choice, nil
}

// Confirm asks a yes/no question.
func (h *Huh) Confirm(title string, initial bool) (bool, error) {
	answer := initial
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)
	if err := h.run(field); err != nil {
		return false, err
	}
	return answer, nil
}

func (h *Huh) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(h.accessible).
		WithShowHelp(false)
	if h.in != nil {
		form = form.WithInput(h.in)
	}
	if h.out != nil {
		form = form.WithOutput(h.out)
	}
	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return domain.ErrPromptAborted
	}
	return err
}

var _ domain.Prompter = (*Huh)(nil)
