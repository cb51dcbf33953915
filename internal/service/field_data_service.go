package service

import (
	"context"

	"agri-assistant-be/internal/dto"
	ragcontext "agri-assistant-be/pkg/rag/context"
)

// IFieldDataService exposes the user's monitoring data directly: the raw
// snapshot for API consumers and an aggregated view for the dashboard.
type IFieldDataService interface {
	// UserData returns the sanitized snapshot rendered as a JSON document.
	UserData(ctx context.Context, userId string) (string, error)
	Dashboard(ctx context.Context, userId string) (*dto.DashboardResponse, error)
}

type fieldDataService struct {
	assembler *ragcontext.Assembler
}

func NewFieldDataService(assembler *ragcontext.Assembler) IFieldDataService {
	return &fieldDataService{assembler: assembler}
}

func (s *fieldDataService) UserData(ctx context.Context, userId string) (string, error) {
	snapshot, err := s.assembler.BuildSnapshot(ctx, userId)
	if err != nil {
		return "", err
	}
	return s.assembler.Serialize(snapshot)
}

func (s *fieldDataService) Dashboard(ctx context.Context, userId string) (*dto.DashboardResponse, error) {
	snapshot, err := s.assembler.BuildSnapshot(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.DashboardResponse{
		Success: true,
		Stats:   s.assembler.Stats(snapshot),
	}
	if len(snapshot.Locations) > 0 {
		res.LatestLocation = asMap(ragcontext.Sanitize(snapshot.Locations[0]))
	}
	if len(snapshot.SoilMoisture) > 0 {
		res.LatestSoil = asMap(ragcontext.Sanitize(snapshot.SoilMoisture[0]))
	}
	if len(snapshot.Weather) > 0 {
		res.LatestWeather = asMap(ragcontext.Sanitize(snapshot.Weather[0]))
	}
	if len(snapshot.Vegetation) > 0 {
		res.LatestVegetation = asMap(ragcontext.Sanitize(snapshot.Vegetation[0]))
	}
	return res, nil
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}
