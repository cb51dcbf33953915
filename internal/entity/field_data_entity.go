package entity

// FieldDataSnapshot bundles a user's latest agricultural monitoring records.
// The sensor ingestion pipelines own the record schemas, so everything beyond
// the user document is carried as generic maps.
type FieldDataSnapshot struct {
	User         map[string]any   `json:"user"`
	Locations    []map[string]any `json:"locations"`
	SoilMoisture []map[string]any `json:"soil_moisture"`
	Weather      []map[string]any `json:"weather"`
	Vegetation   []map[string]any `json:"vegetation"`
}

// Stats summarizes record counts per category for the dashboard.
type FieldDataStats struct {
	LocationsCount      int `json:"locations_count"`
	SoilDataCount       int `json:"soil_data_count"`
	WeatherDataCount    int `json:"weather_data_count"`
	VegetationDataCount int `json:"vegetation_data_count"`
}
