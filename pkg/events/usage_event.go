package events

import (
	"time"

	"github.com/google/uuid"
)

const UsageTopic = "usage_metrics"

// UsageEvent is the wire payload published on the telemetry bus whenever
// a billable or reportable action happens. The consumer persists it as a
// usage metric row.
type UsageEvent struct {
	UserId     uuid.UUID      `json:"user_id"`
	MetricType string         `json:"metric_type"`
	Value      float64        `json:"value"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
