package dto

// PlatformStats holds live row counts at call time.
type PlatformStats struct {
	TotalClubs   int64 `json:"totalClubs"`
	TotalMembers int64 `json:"totalMembers"`
	TotalEvents  int64 `json:"totalEvents"`
	TotalUsers   int64 `json:"totalUsers"`
}

// StatsResponse wraps the stats payload.
type StatsResponse struct {
	Stats PlatformStats `json:"stats"`
}

// HealthResponse reports service and database status.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}
