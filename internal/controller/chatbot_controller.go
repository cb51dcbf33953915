package controller

import (
	"agri-assistant-be/internal/dto"
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/pkg/serverutils"
	"agri-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, sessionAuth, apiKeyAuth fiber.Handler)
	SendChat(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	NewSession(ctx *fiber.Ctx) error
	DeleteHistory(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbot service.IChatbotService
	history service.IChatHistoryService
}

func NewChatbotController(chatbot service.IChatbotService, history service.IChatHistoryService) IChatbotController {
	return &chatbotController{chatbot: chatbot, history: history}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router, sessionAuth, apiKeyAuth fiber.Handler) {
	// Browser surface, cookie-session gated
	chat := r.Group("/chat", sessionAuth)
	chat.Post("/", c.SendChat)
	chat.Get("/history", c.GetHistory)
	chat.Get("/history/:session_id", c.GetHistory)
	chat.Get("/sessions", c.GetSessions)
	chat.Post("/session/new", c.NewSession)
	chat.Post("/delete", c.DeleteHistory)

	// External integrations, header gated; same operations
	external := r.Group("/external/chat", apiKeyAuth)
	external.Post("/", c.SendChat)
	external.Get("/history", c.GetHistory)
	external.Get("/sessions", c.GetSessions)
	external.Post("/session/new", c.NewSession)
	external.Post("/delete", c.DeleteHistory)
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	userId, userName, userEmail := serverutils.CallerLocals(ctx)
	caller := service.Caller{Id: userId, Name: userName, Email: userEmail}

	res, err := c.chatbot.Answer(ctx.Context(), caller, req.SessionId, req.Message)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatbotController) GetHistory(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	sessionId := ctx.Params("session_id")
	if sessionId == "" {
		sessionId = ctx.Query("session_id")
	}

	messages, err := c.history.ListMessages(ctx.Context(), userId, sessionId, 0)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.ChatHistoryResponse{
		Success:     true,
		ChatHistory: toHistoryItems(messages),
		SessionId:   sessionId,
	})
}

func (c *chatbotController) GetSessions(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	sessions, err := c.history.ListSessions(ctx.Context(), userId, 0)
	if err != nil {
		return err
	}

	items := make([]dto.ChatSessionItem, len(sessions))
	for i, s := range sessions {
		items[i] = dto.ChatSessionItem{
			Id:           s.Id,
			Title:        s.Title,
			Timestamp:    s.Timestamp,
			MessageCount: s.MessageCount,
		}
	}
	return ctx.JSON(dto.ChatSessionsResponse{
		Success:      true,
		ChatSessions: items,
	})
}

func (c *chatbotController) NewSession(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	sessionId, err := c.history.CreateSession(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.NewSessionResponse{
		Success:   true,
		SessionId: sessionId,
	})
}

func (c *chatbotController) DeleteHistory(ctx *fiber.Ctx) error {
	userId, _, _ := serverutils.CallerLocals(ctx)

	// Optional scope to one session; an empty body clears everything
	var req struct {
		SessionId string `json:"session_id"`
	}
	if len(ctx.Body()) > 0 {
		if err := serverutils.ParseBody(ctx, &req); err != nil {
			return err
		}
	}

	if _, err := c.history.ClearHistory(ctx.Context(), userId, req.SessionId); err != nil {
		return err
	}

	// Hand the client a fresh session to continue in
	newSessionId, err := c.history.CreateSession(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.DeleteChatResponse{
		Success:   true,
		Message:   "Chat history deleted successfully.",
		SessionId: newSessionId,
	})
}

func toHistoryItems(messages []*entity.ChatMessage) []dto.ChatHistoryItem {
	items := make([]dto.ChatHistoryItem, len(messages))
	for i, m := range messages {
		items[i] = dto.ChatHistoryItem{
			Message:     m.Message,
			Response:    m.Response,
			MessageType: m.MessageType,
			Timestamp:   m.Timestamp,
			SessionId:   m.SessionId,
		}
	}
	return items
}
