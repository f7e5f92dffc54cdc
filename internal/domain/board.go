package domain

// Column is one status group of a Board.
type Column struct {
	Tasks  []*Task
	Status Status
}

// Board groups tasks by status into the four fixed columns.
// It is derived from a task list and never stored.
type Board struct {
	Columns []Column
}

// NewBoard builds a Board from tasks. Columns follow AllStatuses order and
// keep the relative order of the input. Tasks with an unknown status are
// left out. The input slice is not modified.
func NewBoard(tasks []*Task) Board {
	statuses := AllStatuses()
	columns := make([]Column, len(statuses))
	index := make(map[Status]int, len(statuses))
	for i, s := range statuses {
		columns[i] = Column{Status: s, Tasks: []*Task{}}
		index[s] = i
	}
	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			columns[i].Tasks = append(columns[i].Tasks, t)
		}
	}
	return Board{Columns: columns}
}

// Column returns the column for a status.
func (b Board) Column(s Status) Column {
	for _, c := range b.Columns {
		if c.Status == s {
			return c
		}
	}
	return Column{Status: s}
}

// Len returns the number of tasks on the board.
func (b Board) Len() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}
