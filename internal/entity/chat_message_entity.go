package entity

import "time"

// ChatMessage is one question/answer exchange. A chat session is not a stored
// entity: it is the set of messages sharing a SessionId for one user.
type ChatMessage struct {
	Id          string
	UserId      string
	SessionId   string
	Message     string
	Response    string
	MessageType string
	Timestamp   time.Time
}

// SessionSummary is derived on demand by grouping a user's messages by
// session id. It is never persisted and goes stale as soon as a new message
// lands.
type SessionSummary struct {
	Id           string
	Title        string
	Timestamp    time.Time
	MessageCount int
}
