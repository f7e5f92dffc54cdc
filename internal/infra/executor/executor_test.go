package executor

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func TestClient_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("executes simple echo command", func(t *testing.T) {
		output, err := client.Execute(&domain.ExecCommand{Program: "echo", Args: []string{"hello"}})
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(output))
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		_, err := client.Execute(&domain.ExecCommand{Program: "nonexistent-command-xyz"})
		require.Error(t, err)
	})

	t.Run("captures stderr in output", func(t *testing.T) {
		output, err := client.Execute(&domain.ExecCommand{Program: "sh", Args: []string{"-c", "echo error >&2"}})
		require.NoError(t, err)
		assert.Equal(t, "error\n", string(output))
	})
}
