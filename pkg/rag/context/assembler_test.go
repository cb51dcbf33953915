package context

import (
	stdcontext "context"
	"fmt"
	"strings"
	"testing"
	"time"

	"agri-assistant-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type recordingFieldDataRepo struct {
	user     map[string]any
	records  map[string][]map[string]any
	requests []int64
}

func (r *recordingFieldDataRepo) LatestByUser(_ stdcontext.Context, collection, userId string, limit int64) ([]map[string]any, error) {
	r.requests = append(r.requests, limit)
	records := r.records[collection]
	if int64(len(records)) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *recordingFieldDataRepo) UserDocument(_ stdcontext.Context, userId string) (map[string]any, error) {
	return r.user, nil
}

func TestBuildSnapshotBoundsEveryCategoryFetch(t *testing.T) {
	records := make([]map[string]any, 50)
	for i := range records {
		records[i] = map[string]any{"seq": i}
	}
	repo := &recordingFieldDataRepo{
		user: map[string]any{"name": "Budi"},
		records: map[string][]map[string]any{
			contract.CollectionLocations:    records,
			contract.CollectionSoilMoisture: records,
			contract.CollectionWeather:      records,
			contract.CollectionVegetation:   records,
		},
	}

	assembler := NewAssembler(repo, 5)
	snapshot, err := assembler.BuildSnapshot(stdcontext.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, repo.requests, 4)
	for _, limit := range repo.requests {
		assert.Equal(t, int64(5), limit)
	}
	assert.Len(t, snapshot.Locations, 5)
	assert.Len(t, snapshot.SoilMoisture, 5)
	assert.Len(t, snapshot.Weather, 5)
	assert.Len(t, snapshot.Vegetation, 5)
}

func TestNewAssemblerDefaultsRecordLimit(t *testing.T) {
	repo := &recordingFieldDataRepo{}
	assembler := NewAssembler(repo, 0)

	_, err := assembler.BuildSnapshot(stdcontext.Background(), "user-1")
	assert.NoError(t, err)
	for _, limit := range repo.requests {
		assert.Equal(t, int64(20), limit)
	}
}

func TestStatsCountsPerCategory(t *testing.T) {
	repo := &recordingFieldDataRepo{
		records: map[string][]map[string]any{
			contract.CollectionSoilMoisture: {{"a": 1}, {"b": 2}},
			contract.CollectionWeather:      {{"c": 3}},
		},
	}
	assembler := NewAssembler(repo, 20)

	snapshot, err := assembler.BuildSnapshot(stdcontext.Background(), "user-1")
	assert.NoError(t, err)

	stats := assembler.Stats(snapshot)
	assert.Equal(t, 0, stats.LocationsCount)
	assert.Equal(t, 2, stats.SoilDataCount)
	assert.Equal(t, 1, stats.WeatherDataCount)
	assert.Equal(t, 0, stats.VegetationDataCount)
}

func TestSanitize(t *testing.T) {
	oid := bson.NewObjectID()
	stamp := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "nil passthrough", in: nil, want: nil},
		{name: "object id to hex", in: oid, want: oid.Hex()},
		{name: "time to iso8601", in: stamp, want: "2025-06-15T09:30:00Z"},
		{name: "bson datetime to iso8601", in: bson.NewDateTimeFromTime(stamp), want: "2025-06-15T09:30:00Z"},
		{name: "scalar passthrough", in: 42, want: 42},
		{name: "string passthrough", in: "dry", want: "dry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeWalksNestedDocuments(t *testing.T) {
	oid := bson.NewObjectID()
	stamp := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	in := bson.M{
		"_id": oid,
		"readings": bson.A{
			bson.M{"takenAt": bson.NewDateTimeFromTime(stamp), "value": 42},
		},
		"meta": bson.D{{Key: "device", Value: "probe-7"}},
	}

	got, ok := Sanitize(in).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, oid.Hex(), got["_id"])

	readings, ok := got["readings"].([]any)
	assert.True(t, ok)
	reading, ok := readings[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "2025-06-15T09:30:00Z", reading["takenAt"])
	assert.Equal(t, 42, reading["value"])

	meta, ok := got["meta"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "probe-7", meta["device"])
}

func TestSerializeFlattensStoreTypes(t *testing.T) {
	oid := bson.NewObjectID()
	repo := &recordingFieldDataRepo{
		user: map[string]any{"_id": oid, "name": "Budi"},
		records: map[string][]map[string]any{
			contract.CollectionSoilMoisture: {
				{"moisture": 42, "recordedAt": time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)},
			},
		},
	}
	assembler := NewAssembler(repo, 20)

	snapshot, err := assembler.BuildSnapshot(stdcontext.Background(), "user-1")
	assert.NoError(t, err)

	out, err := assembler.Serialize(snapshot)
	assert.NoError(t, err)

	assert.True(t, strings.Contains(out, fmt.Sprintf("%q", oid.Hex())), "object id not rendered as hex string")
	assert.True(t, strings.Contains(out, `"2025-06-15T09:30:00Z"`), "timestamp not rendered as ISO-8601")
	assert.True(t, strings.Contains(out, `"soil_moisture"`))
	assert.False(t, strings.Contains(out, "ObjectID"), "raw bson type leaked into serialization")
}

func TestSerializeNeverCarriesCredentialHash(t *testing.T) {
	repo := &recordingFieldDataRepo{
		user: map[string]any{
			"name":     "Budi",
			"email":    "budi@example.com",
			"password": "$2a$10$secrethash",
		},
		records: map[string][]map[string]any{
			contract.CollectionSoilMoisture: {{"moisture": 42}},
		},
	}
	assembler := NewAssembler(repo, 20)

	snapshot, err := assembler.BuildSnapshot(stdcontext.Background(), "user-1")
	assert.NoError(t, err)
	assert.NotContains(t, snapshot.User, "password")

	out, err := assembler.Serialize(snapshot)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(out, "$2a$10$secrethash"), "bcrypt hash leaked into serialized context")
	assert.False(t, strings.Contains(out, `"password"`))
	// the rest of the user document still reaches the prompt
	assert.True(t, strings.Contains(out, "budi@example.com"))
}

func TestSerializeIsDeterministic(t *testing.T) {
	repo := &recordingFieldDataRepo{
		user: map[string]any{"name": "Budi", "email": "budi@example.com", "role": "farmer"},
		records: map[string][]map[string]any{
			contract.CollectionWeather: {{"temp": 31, "humidity": 80, "wind": 4}},
		},
	}
	assembler := NewAssembler(repo, 20)

	snapshot, err := assembler.BuildSnapshot(stdcontext.Background(), "user-1")
	assert.NoError(t, err)

	first, err := assembler.Serialize(snapshot)
	assert.NoError(t, err)
	second, err := assembler.Serialize(snapshot)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
