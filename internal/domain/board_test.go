package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard_GroupsByStatus(t *testing.T) {
	tasks := []*Task{
		{ID: 0, Title: "task0", Status: StatusTodo},
		{ID: 1, Title: "task1", Status: StatusDone},
		{ID: 2, Title: "task2", Status: StatusInProgress},
	}

	board := NewBoard(tasks)

	require.Len(t, board.Columns, 4)
	assert.Equal(t, StatusTodo, board.Columns[0].Status)
	assert.Equal(t, []*Task{tasks[0]}, board.Columns[0].Tasks)
	assert.Equal(t, StatusInProgress, board.Columns[1].Status)
	assert.Equal(t, []*Task{tasks[2]}, board.Columns[1].Tasks)
	assert.Equal(t, StatusNeedsHelp, board.Columns[2].Status)
	assert.Empty(t, board.Columns[2].Tasks)
	assert.Equal(t, StatusDone, board.Columns[3].Status)
	assert.Equal(t, []*Task{tasks[1]}, board.Columns[3].Tasks)
}

func TestNewBoard_Partition(t *testing.T) {
	statuses := AllStatuses()
	var tasks []*Task
	for i := 0; i < 40; i++ {
		tasks = append(tasks, &Task{ID: i, Status: statuses[(i*7)%len(statuses)]})
	}

	board := NewBoard(tasks)

	seen := make(map[*Task]int)
	for _, col := range board.Columns {
		lastID := -1
		for _, task := range col.Tasks {
			assert.Equal(t, col.Status, task.Status)
			assert.Greater(t, task.ID, lastID, "column %s must keep insertion order", col.Status)
			lastID = task.ID
			seen[task]++
		}
	}
	assert.Len(t, seen, len(tasks))
	for _, n := range seen {
		assert.Equal(t, 1, n)
	}
	assert.Equal(t, len(tasks), board.Len())
}

func TestNewBoard_DoesNotMutateInput(t *testing.T) {
	tasks := []*Task{
		{ID: 0, Status: StatusDone},
		{ID: 1, Status: StatusTodo},
	}

	_ = NewBoard(tasks)

	assert.Equal(t, 0, tasks[0].ID)
	assert.Equal(t, StatusDone, tasks[0].Status)
	assert.Equal(t, 1, tasks[1].ID)
}

func TestBoard_Column(t *testing.T) {
	board := NewBoard([]*Task{{ID: 0, Status: StatusNeedsHelp}})
	assert.Len(t, board.Column(StatusNeedsHelp).Tasks, 1)
	assert.Empty(t, board.Column(StatusDone).Tasks)
}
