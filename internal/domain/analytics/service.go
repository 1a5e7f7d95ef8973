package analytics

import (
	"context"
)

type AnalyticsService interface {
	// GetStats returns headline counters for the admin dashboard.
	GetStats(ctx context.Context) (StatsResponse, error)
}
