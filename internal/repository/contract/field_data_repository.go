package contract

import "context"

// FieldDataRepository reads the sensor-pipeline collections. This service
// never writes them; the ingestion pipelines own their schemas, so records
// come back as generic documents.
type FieldDataRepository interface {
	// LatestByUser returns the user's most recent records from the named
	// category collection, newest-first, capped at limit.
	LatestByUser(ctx context.Context, collection, userId string, limit int64) ([]map[string]any, error)

	// UserDocument returns the raw user document, nil when unknown.
	UserDocument(ctx context.Context, userId string) (map[string]any, error)
}

// Category collections written by the sensor ingestion pipelines.
const (
	CollectionLocations    = "currentlocations"
	CollectionSoilMoisture = "soilmoisturetasks"
	CollectionWeather      = "weathers"
	CollectionVegetation   = "vegetationanalyses"
)
