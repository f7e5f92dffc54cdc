package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/testutil"
	"github.com/runoshun/taskflow/internal/usecase"
)

func TestNew_CreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "taskflow")

	c, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "config.json"), c.Config.ConfigPath)
	assert.Equal(t, filepath.Join(dir, "tasks.json"), c.Config.TasksPath)
	assert.Equal(t, domain.DefaultWebURL, c.Settings.GitHub.WebURL)
	assert.Empty(t, c.Settings.Warnings)
	assert.NotNil(t, c.Prompter)
	assert.NotNil(t, c.Connector)
}

func TestNew_BadSettingsFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("[log\nlevel ="), 0o600))

	c, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, domain.DefaultColumnWidth, c.Settings.Display.ColumnWidth)
	assert.Len(t, c.Settings.Warnings, 1)
}

func TestNew_ConfigDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := New(file)
	assert.Error(t, err)
}

func TestContainer_UseCasesShareStores(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	configs := testutil.NewMockConfigStore()
	c := NewWithDeps(NewConfig(filepath.FromSlash("/cfg"), "/work"), configs, tasks, &testutil.MockClock{}, nil)
	c.Connector = &testutil.MockConnector{}

	out, err := c.OpenSessionUseCase().Execute(t.Context(), usecase.OpenSessionInput{})
	require.NoError(t, err)
	_, err = c.AddTaskUseCase().Execute(t.Context(), out.Session, usecase.AddTaskInput{Title: "x"})
	require.NoError(t, err)

	assert.Len(t, tasks.Tasks, 1)
	assert.NoError(t, c.Close())
	assert.Equal(t, filepath.Join(filepath.FromSlash("/cfg"), "settings.toml"), c.Config.SettingsPath)
}
