package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/infra/jsonstore"
	"github.com/runoshun/taskflow/internal/testutil"
)

func newTestAddTask(tasks domain.TaskRepository) *AddTask {
	return NewAddTask(tasks, &testutil.MockClock{NowTime: testNow}, nil)
}

func TestAddTask_Execute_WithoutTracker(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	s := newTestSession()

	out, err := newTestAddTask(tasks).Execute(context.Background(), s, AddTaskInput{
		Title:       "Write release notes",
		Description: "",
		Priority:    domain.PriorityMedium,
		DueDate:     "tomorrow",
	})

	require.NoError(t, err)
	assert.Empty(t, out.Warnings)
	require.Len(t, tasks.Tasks, 1)
	got := tasks.Tasks[0]
	assert.Equal(t, 0, got.ID)
	assert.Equal(t, "Write release notes", got.Title)
	assert.Equal(t, domain.StatusTodo, got.Status)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.Equal(t, "tomorrow", got.DueDate)
	assert.Equal(t, "March 05, 2024", got.CreatedAt)
	assert.Nil(t, got.IssueNumber)
}

func TestAddTask_Execute_AssignsSequentialIDs(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	s := newTestSession()
	uc := newTestAddTask(tasks)

	for n := 1; n <= 5; n++ {
		out, err := uc.Execute(context.Background(), s, AddTaskInput{Title: "task"})
		require.NoError(t, err)
		assert.Equal(t, n-1, out.Task.ID)
		assert.Len(t, tasks.Tasks, n)
	}
}

func TestAddTask_Execute_IDSkipsUsed(t *testing.T) {
	s := newTestSession()
	s.Tasks = []*domain.Task{
		{ID: 0, Title: "a", Priority: domain.PriorityLow, Status: domain.StatusTodo},
		{ID: 4, Title: "b", Priority: domain.PriorityLow, Status: domain.StatusDone},
	}

	out, err := newTestAddTask(testutil.NewMockTaskRepository()).Execute(context.Background(), s, AddTaskInput{Title: "c"})

	require.NoError(t, err)
	assert.Equal(t, 5, out.Task.ID)
}

func TestAddTask_Execute_MirrorsIssue(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tracker := testutil.NewMockTracker()
	tracker.NextNumber = 42
	s := newTestSession()
	s.Tracker = tracker
	s.Current = &domain.Repository{Owner: "octo", Name: "demo", DisplayName: "demo"}

	out, err := newTestAddTask(tasks).Execute(context.Background(), s, AddTaskInput{
		Title:       "Fix login",
		Description: "Session cookie expires early",
		Priority:    domain.PriorityHigh,
		CreateIssue: true,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Warnings)
	require.Len(t, tracker.Created, 1)
	assert.Equal(t, testutil.CreatedIssue{
		Owner: "octo", Name: "demo", Title: "Fix login", Body: "Session cookie expires early",
	}, tracker.Created[0])

	require.Len(t, tasks.Tasks, 1)
	require.NotNil(t, tasks.Tasks[0].IssueNumber)
	assert.Equal(t, 42, *tasks.Tasks[0].IssueNumber)

	// Saved locally before the issue was created.
	require.Len(t, tasks.Saved, 2)
	assert.Nil(t, tasks.Saved[0][0].IssueNumber)
}

func TestAddTask_Execute_RepositoryOverride(t *testing.T) {
	tracker := testutil.NewMockTracker()
	s := newTestSession()
	s.Tracker = tracker
	s.Current = &domain.Repository{Owner: "octo", Name: "demo", DisplayName: "demo"}

	_, err := newTestAddTask(testutil.NewMockTaskRepository()).Execute(context.Background(), s, AddTaskInput{
		Title:       "x",
		CreateIssue: true,
		Repository:  &domain.Repository{Owner: "acme", Name: "api", DisplayName: "api"},
	})

	require.NoError(t, err)
	require.Len(t, tracker.Created, 1)
	assert.Equal(t, "acme", tracker.Created[0].Owner)
}

func TestAddTask_Execute_IssueFailureStillSaves(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tracker := testutil.NewMockTracker()
	tracker.CreateErr = testutil.ErrMockRemote
	s := newTestSession()
	s.Tracker = tracker
	s.Current = &domain.Repository{Owner: "octo", Name: "demo", DisplayName: "demo"}

	out, err := newTestAddTask(tasks).Execute(context.Background(), s, AddTaskInput{Title: "x", CreateIssue: true})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "Failed to create GitHub issue")
	require.Len(t, tasks.Tasks, 1)
	assert.Nil(t, tasks.Tasks[0].IssueNumber)
	assert.Len(t, s.Tasks, 1)
}

func TestAddTask_Execute_IssueWithoutTracker(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	s := newTestSession()

	out, err := newTestAddTask(tasks).Execute(context.Background(), s, AddTaskInput{Title: "x", CreateIssue: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"Not connected to GitHub, issue not created"}, out.Warnings)
	assert.Len(t, tasks.Tasks, 1)
}

func TestAddTask_Execute_IssueWithoutRepository(t *testing.T) {
	s := newTestSession()
	s.Tracker = testutil.NewMockTracker()

	out, err := newTestAddTask(testutil.NewMockTaskRepository()).Execute(context.Background(), s, AddTaskInput{Title: "x", CreateIssue: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"No repository selected, issue not created"}, out.Warnings)
}

func TestAddTask_Execute_Validation(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	s := newTestSession()
	uc := newTestAddTask(tasks)

	_, err := uc.Execute(context.Background(), s, AddTaskInput{Title: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(context.Background(), s, AddTaskInput{Title: "x", Priority: "Urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	assert.Empty(t, tasks.Saved)
	assert.Empty(t, s.Tasks)
}

func TestAddTask_Execute_DefaultPriorityAndDateFormat(t *testing.T) {
	s := newTestSession()
	s.Settings.Display.DateFormat = "2006-01-02"

	out, err := newTestAddTask(testutil.NewMockTaskRepository()).Execute(context.Background(), s, AddTaskInput{Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
	assert.Equal(t, "2024-03-05", out.Task.CreatedAt)
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	tasks := testutil.NewMockTaskRepository()
	tasks.SaveErr = assert.AnError
	tracker := testutil.NewMockTracker()
	s := newTestSession()
	s.Tracker = tracker
	s.Current = &domain.Repository{Owner: "octo", Name: "demo", DisplayName: "demo"}

	_, err := newTestAddTask(tasks).Execute(context.Background(), s, AddTaskInput{Title: "x", CreateIssue: true})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, tracker.Created)
}

// secondSaveFails accepts the first Save and fails every later one.
type secondSaveFails struct {
	*testutil.MockTaskRepository
	saves int
}

func (r *secondSaveFails) Save(tasks []*domain.Task) error {
	r.saves++
	if r.saves > 1 {
		return assert.AnError
	}
	return r.MockTaskRepository.Save(tasks)
}

func TestAddTask_Execute_IssueNumberSaveError(t *testing.T) {
	tasks := &secondSaveFails{MockTaskRepository: testutil.NewMockTaskRepository()}
	tracker := testutil.NewMockTracker()
	tracker.NextNumber = 17
	s := newTestSession()
	s.Tracker = tracker
	s.Current = &domain.Repository{Owner: "octo", Name: "demo", DisplayName: "demo"}

	out, err := newTestAddTask(tasks).Execute(context.Background(), s, AddTaskInput{Title: "x", CreateIssue: true})

	require.ErrorIs(t, err, assert.AnError)
	require.NotNil(t, out)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "#17")
	assert.Contains(t, out.Warnings[0], "octo/demo")
	require.Len(t, tracker.Created, 1)
	// The task itself was saved before the issue was created.
	require.Len(t, tasks.Tasks, 1)
	assert.Nil(t, tasks.Tasks[0].IssueNumber)
}

func TestAddTask_Execute_KeepsTitleAsGiven(t *testing.T) {
	out, err := newTestAddTask(testutil.NewMockTaskRepository()).Execute(
		context.Background(), newTestSession(), AddTaskInput{Title: "  Fix login "})

	require.NoError(t, err)
	assert.Equal(t, "  Fix login ", out.Task.Title)
}

func TestAddTask_Execute_PersistsRecord(t *testing.T) {
	store := jsonstore.New(filepath.Join(t.TempDir(), "tasks.json"))
	s := newTestSession()

	_, err := newTestAddTask(store).Execute(context.Background(), s, AddTaskInput{
		Title: "Write release notes", Priority: domain.PriorityMedium, DueDate: "tomorrow",
	})
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, s.Tasks[0], loaded[0])
}
