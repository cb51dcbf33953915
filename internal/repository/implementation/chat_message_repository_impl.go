package implementation

import (
	"context"

	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/mapper"
	"agri-assistant-be/internal/model"
	"agri-assistant-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ChatMessageRepositoryImpl struct {
	collection *mongo.Collection
	mapper     *mapper.ChatMapper
}

func NewChatMessageRepository(db *mongo.Database) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		collection: db.Collection(model.ChatMessage{}.CollectionName()),
		mapper:     mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	m, err := r.mapper.ChatMessageToModel(message)
	if err != nil {
		return err
	}
	m.Id = bson.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, m); err != nil {
		return err
	}
	*message = *r.mapper.ChatMessageToEntity(m)
	return nil
}

func (r *ChatMessageRepositoryImpl) FindBySession(ctx context.Context, userId, sessionId string, limit int64) ([]*entity.ChatMessage, error) {
	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"userId": userObjectId, "sessionId": sessionId}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return r.findMessages(ctx, filter, opts)
}

func (r *ChatMessageRepositoryImpl) FindRecentByUser(ctx context.Context, userId string, limit int64) ([]*entity.ChatMessage, error) {
	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return nil, err
	}

	// Newest first to honor the limit, reversed below so callers always see
	// ascending creation order.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	messages, err := r.findMessages(ctx, bson.M{"userId": userObjectId}, opts)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ChatMessageRepositoryImpl) FindAllByUser(ctx context.Context, userId string) ([]*entity.ChatMessage, error) {
	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	return r.findMessages(ctx, bson.M{"userId": userObjectId}, opts)
}

func (r *ChatMessageRepositoryImpl) DeleteByUser(ctx context.Context, userId string) (int64, error) {
	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"userId": userObjectId})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ChatMessageRepositoryImpl) DeleteBySession(ctx context.Context, userId, sessionId string) (int64, error) {
	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"userId": userObjectId, "sessionId": sessionId})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ChatMessageRepositoryImpl) findMessages(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*entity.ChatMessage, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var models []*model.ChatMessage
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}

	messages := make([]*entity.ChatMessage, len(models))
	for i, m := range models {
		messages[i] = r.mapper.ChatMessageToEntity(m)
	}
	return messages, nil
}
