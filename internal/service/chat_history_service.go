package service

import (
	"context"
	"sort"
	"time"

	"agri-assistant-be/internal/constant"
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

const sessionTitleMaxLen = 30

// IChatHistoryService is the session ledger: it creates session identifiers,
// appends exchanges, and derives session groupings from the message
// collection. Sessions are never stored as their own documents.
type IChatHistoryService interface {
	// CreateSession returns a fresh opaque session identifier. Nothing is
	// written until the first message lands.
	CreateSession(ctx context.Context, userId string) (string, error)

	AppendMessage(ctx context.Context, userId, sessionId, message, response, messageType string) (string, error)

	// ListMessages returns messages oldest-first. With a session id it scopes
	// to that session; without one it selects the user's most recent `limit`
	// messages across all sessions, still presented oldest-first.
	ListMessages(ctx context.Context, userId, sessionId string, limit int64) ([]*entity.ChatMessage, error)

	// ListSessions derives per-session summaries, most recently started
	// session first.
	ListSessions(ctx context.Context, userId string, limit int) ([]*entity.SessionSummary, error)

	// ClearHistory deletes the user's messages, scoped to one session when a
	// session id is given. Deleting nothing is not an error.
	ClearHistory(ctx context.Context, userId, sessionId string) (int64, error)
}

type chatHistoryService struct {
	messages contract.ChatMessageRepository
}

func NewChatHistoryService(messages contract.ChatMessageRepository) IChatHistoryService {
	return &chatHistoryService{messages: messages}
}

func (s *chatHistoryService) CreateSession(ctx context.Context, userId string) (string, error) {
	// 128-bit random value; collisions are not a practical concern
	return uuid.NewString(), nil
}

func (s *chatHistoryService) AppendMessage(ctx context.Context, userId, sessionId, message, response, messageType string) (string, error) {
	if message == "" {
		return "", apperror.Validation("message is required")
	}
	if sessionId == "" {
		return "", apperror.Validation("session id is required")
	}
	if messageType == "" {
		messageType = constant.ChatMessageTypeConversation
	}

	msg := &entity.ChatMessage{
		UserId:      userId,
		SessionId:   sessionId,
		Message:     message,
		Response:    response,
		MessageType: messageType,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return "", err
	}
	return msg.Id, nil
}

func (s *chatHistoryService) ListMessages(ctx context.Context, userId, sessionId string, limit int64) ([]*entity.ChatMessage, error) {
	if limit <= 0 {
		limit = constant.DefaultHistoryLimit
	}
	if sessionId != "" {
		return s.messages.FindBySession(ctx, userId, sessionId, limit)
	}
	return s.messages.FindRecentByUser(ctx, userId, limit)
}

func (s *chatHistoryService) ListSessions(ctx context.Context, userId string, limit int) ([]*entity.SessionSummary, error) {
	if limit <= 0 {
		limit = constant.DefaultSessionListLimit
	}

	messages, err := s.messages.FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	// Messages arrive oldest-first, so the first message seen per session id
	// supplies the title and the representative timestamp.
	byId := make(map[string]*entity.SessionSummary)
	summaries := []*entity.SessionSummary{}
	for _, msg := range messages {
		summary, ok := byId[msg.SessionId]
		if !ok {
			summary = &entity.SessionSummary{
				Id:        msg.SessionId,
				Title:     truncateTitle(msg.Message),
				Timestamp: msg.Timestamp,
			}
			byId[msg.SessionId] = summary
			summaries = append(summaries, summary)
		}
		summary.MessageCount++
	}

	// Most recently started session first; stable so equal timestamps keep
	// insertion order.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Timestamp.After(summaries[j].Timestamp)
	})

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (s *chatHistoryService) ClearHistory(ctx context.Context, userId, sessionId string) (int64, error) {
	if sessionId != "" {
		return s.messages.DeleteBySession(ctx, userId, sessionId)
	}
	return s.messages.DeleteByUser(ctx, userId)
}

func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= sessionTitleMaxLen {
		return string(runes)
	}
	return string(runes[:sessionTitleMaxLen]) + "..."
}
