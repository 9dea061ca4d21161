package cmd

// Config carries everything main reads from the environment: the facade
// port, the dispatch backend credentials, the local state database, and the
// reporting throttle thresholds.
type Config struct {
	HTTPPort string

	BackendBaseURL string
	BackendToken   string
	TenantID       string
	SessionRole    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ReportIntervalSeconds int
	ReportDistanceMeters  float64

	SimStartLat float64
	SimStartLng float64
}
