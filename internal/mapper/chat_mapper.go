package mapper

import (
	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:          msg.Id.Hex(),
		UserId:      msg.UserId.Hex(),
		SessionId:   msg.SessionId,
		Message:     msg.Message,
		Response:    msg.Response,
		MessageType: msg.MessageType,
		Timestamp:   msg.Timestamp,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) (*model.ChatMessage, error) {
	if msg == nil {
		return nil, nil
	}

	userId, err := bson.ObjectIDFromHex(msg.UserId)
	if err != nil {
		return nil, err
	}

	var id bson.ObjectID
	if msg.Id != "" {
		parsed, err := bson.ObjectIDFromHex(msg.Id)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	return &model.ChatMessage{
		Id:          id,
		UserId:      userId,
		SessionId:   msg.SessionId,
		Message:     msg.Message,
		Response:    msg.Response,
		MessageType: msg.MessageType,
		Timestamp:   msg.Timestamp,
	}, nil
}
