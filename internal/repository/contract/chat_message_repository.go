package contract

import (
	"context"

	"agri-assistant-be/internal/entity"
)

type ChatMessageRepository interface {
	// Create assigns the message id and persists the document.
	Create(ctx context.Context, message *entity.ChatMessage) error

	// FindBySession returns a session's messages oldest-first, capped at limit.
	FindBySession(ctx context.Context, userId, sessionId string, limit int64) ([]*entity.ChatMessage, error)

	// FindRecentByUser returns the user's most recent messages across all
	// sessions, oldest-first, capped at limit.
	FindRecentByUser(ctx context.Context, userId string, limit int64) ([]*entity.ChatMessage, error)

	// FindAllByUser returns every message for the user oldest-first; feeds the
	// session summary aggregation.
	FindAllByUser(ctx context.Context, userId string) ([]*entity.ChatMessage, error)

	// DeleteByUser removes all of the user's messages and reports how many
	// went away. Zero deletions is not an error.
	DeleteByUser(ctx context.Context, userId string) (int64, error)

	// DeleteBySession removes one session's messages for the user.
	DeleteBySession(ctx context.Context, userId, sessionId string) (int64, error)
}
