package metrics

import "monitor-srv/internal/model"

// Canonical sentiment buckets every raw label is folded into.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

type EntityMetricsInput struct {
	EntityID     string
	ForceRefresh bool
}

type EntityMetricsOutput struct {
	Metrics  model.EntityMetrics
	CacheHit bool
	// Stale is set when the review service was unreachable and the output
	// is the last cached snapshot instead of fresh data.
	Stale bool
}

type RebuildInput struct {
	EntityID string
	Reviews  []model.RawReview
}
