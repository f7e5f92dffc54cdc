package usecase

import (
	"github.com/runoshun/taskflow/internal/domain"
)

// ShowBoard derives the status board from the session's tasks.
// The board is rebuilt on every call and never saved.
type ShowBoard struct{}

// NewShowBoard creates a new ShowBoard use case.
func NewShowBoard() *ShowBoard {
	return &ShowBoard{}
}

// Execute returns the current board.
func (uc *ShowBoard) Execute(s *Session) domain.Board {
	return domain.NewBoard(s.Tasks)
}
