package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Locations and observations
	LocationRepository LocationRepository
	ForecastRepository ForecastRepository
	ForecastCache      ForecastCache

	// Weather
	WeatherProvider WeatherProvider

	// Alerts
	AlertRepository AlertRepository
	AlertPublisher  AlertPublisher

	// Citizen input
	ReportRepository      ReportRepository
	DeviceTokenRepository DeviceTokenRepository

	// Metrics
	IngestionMetrics IngestionMetrics
	CacheMetrics     CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
