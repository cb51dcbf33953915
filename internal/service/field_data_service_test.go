package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"agri-assistant-be/internal/repository/contract"
	ragcontext "agri-assistant-be/pkg/rag/context"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestUserDataRendersSanitizedSnapshot(t *testing.T) {
	oid := bson.NewObjectID()
	repo := &fakeFieldDataRepo{
		user: map[string]any{"_id": oid, "name": "Budi"},
		records: map[string][]map[string]any{
			contract.CollectionWeather: {
				{"temp": 31, "recordedAt": time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)},
			},
		},
	}
	svc := NewFieldDataService(ragcontext.NewAssembler(repo, 20))

	out, err := svc.UserData(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, oid.Hex()))
	assert.True(t, strings.Contains(out, `"2025-06-15T09:30:00Z"`))
	assert.True(t, strings.Contains(out, `"weather"`))
}

func TestDashboardAggregates(t *testing.T) {
	repo := &fakeFieldDataRepo{
		user: map[string]any{"name": "Budi"},
		records: map[string][]map[string]any{
			contract.CollectionSoilMoisture: {
				{"moisture": 42},
				{"moisture": 39},
			},
			contract.CollectionWeather: {
				{"temp": 31},
			},
		},
	}
	svc := NewFieldDataService(ragcontext.NewAssembler(repo, 20))

	res, err := svc.Dashboard(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Stats.SoilDataCount)
	assert.Equal(t, 1, res.Stats.WeatherDataCount)
	assert.Equal(t, 0, res.Stats.LocationsCount)

	// newest record per category, nil when the category is empty
	assert.Equal(t, 42, res.LatestSoil["moisture"])
	assert.Equal(t, 31, res.LatestWeather["temp"])
	assert.Nil(t, res.LatestLocation)
	assert.Nil(t, res.LatestVegetation)
}
