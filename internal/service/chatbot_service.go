package service

import (
	"context"
	"strings"
	"time"

	"agri-assistant-be/internal/constant"
	"agri-assistant-be/internal/dto"
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/internal/pkg/logger"
	"agri-assistant-be/pkg/llm"
	ragcontext "agri-assistant-be/pkg/rag/context"
	"agri-assistant-be/pkg/rag/prompt"
)

// Caller identifies the authenticated user behind a request, as resolved by
// the access gateway. Services assume the id is validated.
type Caller struct {
	Id    string
	Name  string
	Email string
}

// IChatbotService answers one user message end-to-end: context assembly,
// upstream model call, ledger write.
type IChatbotService interface {
	Answer(ctx context.Context, caller Caller, sessionId, message string) (*dto.SendChatResponse, error)
}

type chatbotService struct {
	history     IChatHistoryService
	assembler   *ragcontext.Assembler
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewChatbotService(
	history IChatHistoryService,
	assembler *ragcontext.Assembler,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		history:     history,
		assembler:   assembler,
		llmProvider: llmProvider,
		log:         log,
	}
}

func (s *chatbotService) Answer(ctx context.Context, caller Caller, sessionId, message string) (*dto.SendChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperror.Validation("message is required")
	}

	if sessionId == "" {
		created, err := s.history.CreateSession(ctx, caller.Id)
		if err != nil {
			return nil, err
		}
		sessionId = created
	}

	snapshot, err := s.assembler.BuildSnapshot(ctx, caller.Id)
	if err != nil {
		return nil, err
	}
	contextData, err := s.assembler.Serialize(snapshot)
	if err != nil {
		return nil, err
	}

	ragPrompt := prompt.NewBuilder(contextData, caller.Name, caller.Email, message, time.Now()).Build()

	prior, err := s.history.ListMessages(ctx, caller.Id, sessionId, constant.ConversationTurnLimit)
	if err != nil {
		return nil, err
	}

	var response string
	if len(prior) == 0 {
		response, err = s.llmProvider.Generate(ctx, ragPrompt)
	} else {
		// Continuing a session: replay the prior exchanges as turns, with the
		// freshly built prompt as the closing user turn.
		turns := make([]llm.Message, 0, 2*len(prior)+1)
		for _, m := range prior {
			turns = append(turns,
				llm.Message{Role: "user", Content: m.Message},
				llm.Message{Role: "model", Content: m.Response},
			)
		}
		turns = append(turns, llm.Message{Role: "user", Content: ragPrompt})
		response, err = s.llmProvider.Chat(ctx, turns)
	}
	if err != nil {
		s.log.Error("chatbot", "generative model call failed", map[string]interface{}{
			"user_id": caller.Id,
			"error":   err.Error(),
		})
		// The exchange is not persisted: no answer means no ledger entry
		return nil, apperror.Upstream(err)
	}

	if _, err := s.history.AppendMessage(ctx, caller.Id, sessionId, message, response, constant.ChatMessageTypeConversation); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		Success:   true,
		Response:  response,
		SessionId: sessionId,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
