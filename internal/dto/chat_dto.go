package dto

import "time"

type SendChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

type SendChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

type ChatHistoryItem struct {
	Message     string    `json:"message"`
	Response    string    `json:"response"`
	MessageType string    `json:"messageType"`
	Timestamp   time.Time `json:"timestamp"`
	SessionId   string    `json:"sessionId"`
}

type ChatHistoryResponse struct {
	Success     bool              `json:"success"`
	ChatHistory []ChatHistoryItem `json:"chat_history"`
	SessionId   string            `json:"session_id,omitempty"`
}

type ChatSessionItem struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Timestamp    time.Time `json:"timestamp"`
	MessageCount int       `json:"message_count"`
}

type ChatSessionsResponse struct {
	Success      bool              `json:"success"`
	ChatSessions []ChatSessionItem `json:"chat_sessions"`
}

type NewSessionResponse struct {
	Success   bool   `json:"success"`
	SessionId string `json:"session_id"`
}

type DeleteChatResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionId string `json:"session_id,omitempty"`
}
