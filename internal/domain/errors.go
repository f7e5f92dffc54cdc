package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrEmptyTitle            = errors.New("title cannot be empty")
	ErrEmptyToken            = errors.New("token cannot be empty")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidRepository     = errors.New("repository owner and name are required")
	ErrRepositoryNotFound    = errors.New("repository not configured")
	ErrRepositoryUnreachable = errors.New("could not access repository")
	ErrNoTracker             = errors.New("not connected to GitHub")
	ErrNoRepository          = errors.New("no repository selected")
	ErrNoRepositories        = errors.New("no repositories configured")
	ErrConfigParse           = errors.New("failed to parse config")
	ErrConfigExists          = errors.New("config file already exists")
	ErrNotInteractive        = errors.New("interactive mode requires a terminal")
	ErrPromptAborted         = errors.New("prompt aborted")
)
