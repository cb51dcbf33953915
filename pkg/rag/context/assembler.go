package context

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agri-assistant-be/internal/entity"
	"agri-assistant-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Assembler gathers a user's monitoring records and renders them as the text
// blob injected into the model prompt.
type Assembler struct {
	fieldData   contract.FieldDataRepository
	recordLimit int64
}

func NewAssembler(fieldData contract.FieldDataRepository, recordLimit int64) *Assembler {
	if recordLimit <= 0 {
		recordLimit = 20
	}
	return &Assembler{fieldData: fieldData, recordLimit: recordLimit}
}

// BuildSnapshot fetches the user document plus the most recent records from
// each pipeline collection. The per-category fetch is bounded so one user
// with years of sensor data cannot blow up the prompt.
func (a *Assembler) BuildSnapshot(ctx context.Context, userId string) (*entity.FieldDataSnapshot, error) {
	user, err := a.fieldData.UserDocument(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("fetch user document: %w", err)
	}
	// The repository already projects the hash away; this guards any other
	// FieldDataRepository implementation feeding the prompt.
	delete(user, "password")

	snapshot := &entity.FieldDataSnapshot{User: user}

	categories := []struct {
		collection string
		target     *[]map[string]any
	}{
		{contract.CollectionLocations, &snapshot.Locations},
		{contract.CollectionSoilMoisture, &snapshot.SoilMoisture},
		{contract.CollectionWeather, &snapshot.Weather},
		{contract.CollectionVegetation, &snapshot.Vegetation},
	}

	for _, c := range categories {
		records, err := a.fieldData.LatestByUser(ctx, c.collection, userId, a.recordLimit)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", c.collection, err)
		}
		*c.target = records
	}

	return snapshot, nil
}

// Stats counts the fetched records per category for the dashboard view.
func (a *Assembler) Stats(snapshot *entity.FieldDataSnapshot) entity.FieldDataStats {
	return entity.FieldDataStats{
		LocationsCount:      len(snapshot.Locations),
		SoilDataCount:       len(snapshot.SoilMoisture),
		WeatherDataCount:    len(snapshot.Weather),
		VegetationDataCount: len(snapshot.Vegetation),
	}
}

// Serialize renders the snapshot as indented JSON with store-specific types
// flattened: object ids become hex strings, timestamps become ISO-8601. The
// output is deterministic for a fixed snapshot.
func (a *Assembler) Serialize(snapshot *entity.FieldDataSnapshot) (string, error) {
	plain := map[string]any{
		"user":          Sanitize(snapshot.User),
		"locations":     sanitizeRecords(snapshot.Locations),
		"soil_moisture": sanitizeRecords(snapshot.SoilMoisture),
		"weather":       sanitizeRecords(snapshot.Weather),
		"vegetation":    sanitizeRecords(snapshot.Vegetation),
	}

	out, err := json.MarshalIndent(plain, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func sanitizeRecords(records []map[string]any) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = Sanitize(r)
	}
	return out
}

// Sanitize walks decoded bson values and replaces everything json.Marshal
// would render poorly or non-portably: object ids become hex strings and
// timestamps ISO-8601 strings.
func Sanitize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case bson.M:
		return sanitizeMap(val)
	case map[string]any:
		return sanitizeMap(val)
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = Sanitize(e.Value)
		}
		return m
	case bson.A:
		return sanitizeSlice(val)
	case []any:
		return sanitizeSlice(val)
	default:
		return val
	}
}

func sanitizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Sanitize(v)
	}
	return out
}

func sanitizeSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Sanitize(v)
	}
	return out
}
