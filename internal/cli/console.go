package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/tui"
	"github.com/runoshun/taskflow/internal/usecase"
)

// console prints user-facing messages.
type console struct {
	out      io.Writer
	errOut   io.Writer
	styles   tui.Styles
	renderer *tui.Renderer
}

func newConsole(cmd *cobra.Command, c *app.Container) *console {
	styles := tui.DefaultStyles()
	return &console{
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		styles:   styles,
		renderer: tui.NewRenderer(styles, c.Settings.Display.ColumnWidth),
	}
}

func (u *console) println(a ...any) {
	_, _ = fmt.Fprintln(u.out, a...)
}

func (u *console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(u.out, format, a...)
}

func (u *console) success(format string, a ...any) {
	_, _ = fmt.Fprintln(u.out, u.styles.Success.Render(fmt.Sprintf(format, a...)))
}

func (u *console) warn(msg string) {
	_, _ = fmt.Fprintln(u.errOut, u.styles.Warning.Render("Warning: "+msg))
}

func (u *console) warnAll(msgs []string) {
	for _, m := range msgs {
		u.warn(m)
	}
}

func (u *console) error(err error) {
	_, _ = fmt.Fprintln(u.errOut, u.styles.Error.Render("Error: "+err.Error()))
}

// openSession loads the session and prints settings and session warnings.
func openSession(ctx context.Context, c *app.Container, ui *console, connect bool) (*usecase.Session, error) {
	ui.warnAll(c.Settings.Warnings)
	out, err := c.OpenSessionUseCase().Execute(ctx, usecase.OpenSessionInput{
		Settings: c.Settings,
		Connect:  connect,
	})
	if err != nil {
		return nil, err
	}
	ui.warnAll(out.Warnings)
	return out.Session, nil
}
