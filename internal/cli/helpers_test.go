package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/infra/config"
	"github.com/runoshun/taskflow/internal/testutil"
)

// testEnv bundles a container built from test doubles.
type testEnv struct {
	c         *app.Container
	tasks     *testutil.MockTaskRepository
	configs   *testutil.MockConfigStore
	tracker   *testutil.MockTracker
	connector *testutil.MockConnector
	prompts   *testutil.ScriptedPrompter
	executor  *testutil.MockExecutor
	clipboard *testutil.MockClipboard
	remotes   *testutil.MockRemoteDetector
}

func newTestEnv(t *testing.T, answers ...any) *testEnv {
	t.Helper()
	dir := t.TempDir()
	te := &testEnv{
		tasks:     testutil.NewMockTaskRepository(),
		configs:   testutil.NewMockConfigStore(),
		tracker:   testutil.NewMockTracker(),
		prompts:   testutil.NewScriptedPrompter(answers...),
		executor:  &testutil.MockExecutor{},
		clipboard: &testutil.MockClipboard{},
		remotes:   &testutil.MockRemoteDetector{Err: errors.New("no origin remote")},
	}
	te.connector = &testutil.MockConnector{Tracker: te.tracker}

	c := app.NewWithDeps(app.NewConfig(dir, dir), te.configs, te.tasks,
		&testutil.MockClock{NowTime: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)}, nil)
	c.Connector = te.connector
	c.Remotes = te.remotes
	c.Executor = te.executor
	c.Clipboard = te.clipboard
	c.Prompter = te.prompts
	c.SettingsInit = config.NewLoader(dir)
	c.Interactive = func() bool { return true }
	te.c = c
	return te
}

// withToken configures a token so sessions connect to the mock tracker.
func (te *testEnv) withToken() *testEnv {
	token := "ghp_test"
	te.configs.Config.Token = &token
	return te
}

func (te *testEnv) run(args ...string) (string, string, error) {
	root := newRootCommand(&env{container: te.c}, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}
