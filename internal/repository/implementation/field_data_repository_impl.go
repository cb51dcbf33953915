package implementation

import (
	"context"
	"errors"

	"agri-assistant-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ownerField names the owning-user field per pipeline collection. The soil
// moisture pipeline writes "user" where the others write "userId".
var ownerField = map[string]string{
	contract.CollectionLocations:    "userId",
	contract.CollectionSoilMoisture: "user",
	contract.CollectionWeather:      "userId",
	contract.CollectionVegetation:   "userId",
}

type FieldDataRepositoryImpl struct {
	db *mongo.Database
}

func NewFieldDataRepository(db *mongo.Database) contract.FieldDataRepository {
	return &FieldDataRepositoryImpl{db: db}
}

func (r *FieldDataRepositoryImpl) LatestByUser(ctx context.Context, collection, userId string, limit int64) ([]map[string]any, error) {
	field, ok := ownerField[collection]
	if !ok {
		return nil, errors.New("unknown field data collection: " + collection)
	}

	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{field: userObjectId}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []map[string]any{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FieldDataRepositoryImpl) UserDocument(ctx context.Context, userId string) (map[string]any, error) {
	userObjectId, err := bson.ObjectIDFromHex(userId)
	if err != nil {
		return nil, err
	}

	// The credential hash never leaves the store through this read path.
	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var doc bson.M
	err = r.db.Collection("users").FindOne(ctx, bson.M{"_id": userObjectId}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}
