package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/aggo-mock-api/internal/fixtures"
	"github.com/adanyl0v/aggo-mock-api/internal/models"
	"github.com/adanyl0v/aggo-mock-api/internal/ui"
)

type chatServiceImpl struct {
	logger   zerolog.Logger
	fixtures *fixtures.Store
	delay    time.Duration
}

func NewChatService(
	logger zerolog.Logger,
	fixtureStore *fixtures.Store,
	delay time.Duration,
) ChatService {
	return &chatServiceImpl{
		logger:   logger,
		fixtures: fixtureStore,
		delay:    delay,
	}
}

func (s *chatServiceImpl) Reply(ctx context.Context, message string) (*models.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	reply := s.fixtures.Catalog().Reply(message)

	err := wait(ctx, s.delay)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("chat reply interrupted")
		return nil, err
	}

	s.logger.Info().
		Int("message_len", len(message)).
		Msg("replied to chat message")
	return &models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	}, nil
}

func (s *chatServiceImpl) Play(ctx context.Context, script string) (<-chan models.ChatMessage, error) {
	steps, ok := s.fixtures.Catalog().Script(script)
	if !ok {
		return nil, ErrScriptNotFound
	}

	messages := make(chan models.ChatMessage)
	go func() {
		defer close(messages)

		for i, step := range steps {
			err := wait(ctx, step.Delay())
			if err != nil {
				s.logger.Debug().
					Str("script", script).
					Int("step", i).
					Msg("script playback stopped")
				return
			}

			message := models.ChatMessage{
				ID:        uuid.NewString(),
				Role:      models.RoleAgent,
				Content:   step.Content,
				Timestamp: time.Now(),
				State:     step.State,
				Icon:      step.Icon,
			}
			if step.Progress != nil {
				progress := ui.ClampPercent(*step.Progress)
				message.Progress = &progress
			}

			select {
			case <-ctx.Done():
				return
			case messages <- message:
			}
		}

		s.logger.Info().
			Str("script", script).
			Int("steps", len(steps)).
			Msg("played script")
	}()

	return messages, nil
}
