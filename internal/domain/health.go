package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	Error       string `json:"error,omitempty"`
	LastChecked string `json:"lastChecked"`
}

// MetricsSummary is returned by GET /api/v1/metrics/summary.
type MetricsSummary struct {
	OwnershipViolations map[string]int64 `json:"ownershipViolations"`
	StoreErrors         map[string]int64 `json:"storeErrors"`
	CacheHits           int64            `json:"cacheHits"`
	CacheMisses         int64            `json:"cacheMisses"`
	CacheHitRate        float64          `json:"cacheHitRate"`
	Period              string           `json:"period"`
}
