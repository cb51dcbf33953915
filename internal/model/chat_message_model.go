package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ChatMessage mirrors one document in the append-only chat_history
// collection. SessionId is denormalized on every message; there is no
// separate sessions collection.
type ChatMessage struct {
	Id          bson.ObjectID `bson:"_id,omitempty"`
	UserId      bson.ObjectID `bson:"userId"`
	SessionId   string        `bson:"sessionId"`
	Message     string        `bson:"message"`
	Response    string        `bson:"response"`
	MessageType string        `bson:"messageType"`
	Timestamp   time.Time     `bson:"timestamp"`
}

func (ChatMessage) CollectionName() string {
	return "chat_history"
}
