package dto

import "agri-assistant-be/internal/entity"

type DashboardResponse struct {
	Success          bool                  `json:"success"`
	Stats            entity.FieldDataStats `json:"stats"`
	LatestLocation   map[string]any        `json:"latest_location"`
	LatestSoil       map[string]any        `json:"latest_soil"`
	LatestWeather    map[string]any        `json:"latest_weather"`
	LatestVegetation map[string]any        `json:"latest_vegetation"`
}
