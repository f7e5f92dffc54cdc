package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTaskID(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*Task
		want  int
	}{
		{"empty", nil, 0},
		{"append only", []*Task{{ID: 0}, {ID: 1}, {ID: 2}}, 3},
		{"gap after removal", []*Task{{ID: 0}, {ID: 2}}, 3},
		{"unordered", []*Task{{ID: 5}, {ID: 1}}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextTaskID(tt.tasks))
		})
	}
}

func TestFindTask(t *testing.T) {
	tasks := []*Task{{ID: 0, Title: "a"}, {ID: 3, Title: "b"}}

	got := FindTask(tasks, 3)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.Title)
	assert.Nil(t, FindTask(tasks, 1))
}

func TestTask_JSONFieldNames(t *testing.T) {
	issue := 42
	task := &Task{
		ID:          1,
		Title:       "Write release notes",
		Description: "",
		Priority:    PriorityMedium,
		Status:      StatusInProgress,
		DueDate:     "tomorrow",
		IssueNumber: &issue,
		CreatedAt:   "March 04, 2025",
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Write release notes", raw["title"])
	assert.Equal(t, "", raw["description"])
	assert.Equal(t, "Medium", raw["priority"])
	assert.Equal(t, "InProgress", raw["status"])
	assert.Equal(t, "tomorrow", raw["due_date"])
	assert.InDelta(t, 42, raw["github_issue_number"], 0)
	assert.Equal(t, "March 04, 2025", raw["created_at"])
	assert.InDelta(t, 1, raw["id"], 0)
}

func TestTask_IssueNumberAbsent(t *testing.T) {
	data, err := json.Marshal(&Task{Title: "x", Priority: PriorityLow, Status: StatusTodo})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "github_issue_number")

	// Records written with an explicit null still load.
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":0,"title":"x","description":"","priority":"Low","status":"Todo","due_date":"","github_issue_number":null,"created_at":""}`), &task))
	assert.False(t, task.HasIssue())
}
