package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
)

// SetTokenInput contains the parameters for storing a GitHub token.
type SetTokenInput struct {
	Token string
}

// SetTokenOutput contains the result of storing a token.
type SetTokenOutput struct {
	Warnings  []string
	Connected bool
}

// SetToken stores a GitHub token and reconnects with it.
type SetToken struct {
	configs   domain.ConfigStore
	connector domain.TrackerConnector
	logger    *slog.Logger
}

// NewSetToken creates a new SetToken use case.
func NewSetToken(configs domain.ConfigStore, connector domain.TrackerConnector, logger *slog.Logger) *SetToken {
	return &SetToken{
		configs:   configs,
		connector: connector,
		logger:    orDiscard(logger),
	}
}

// Execute saves the token, then tries to connect. A failed connection
// leaves the session without a tracker and is reported as a warning.
func (uc *SetToken) Execute(ctx context.Context, s *Session, in SetTokenInput) (*SetTokenOutput, error) {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return nil, domain.ErrEmptyToken
	}

	s.Config.Token = &token
	if err := uc.configs.Save(s.Config); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	out := &SetTokenOutput{}
	tracker, err := uc.connector.Connect(ctx, token)
	if err != nil {
		uc.logger.Warn("github connection failed", "err", err)
		s.Tracker = nil
		out.Warnings = append(out.Warnings, "GitHub connection failed")
		return out, nil
	}
	s.Tracker = tracker
	out.Connected = true
	return out, nil
}
