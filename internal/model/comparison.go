package model

// AspectScale is the upper bound of the aspect score axis. Both sides of a
// comparison are plotted against it.
const AspectScale = 5.0

// AspectComparison is one row of the head-to-head aspect chart. An aspect
// missing on one side scores 0 for that side, never omitted, so both
// entities share identical axes.
type AspectComparison struct {
	Name   string  `json:"name"`
	ScoreA float64 `json:"score_a"`
	ScoreB float64 `json:"score_b"`
	Scale  float64 `json:"scale"`
}

// VolumeBreakdown is the per-entity review volume split.
type VolumeBreakdown struct {
	EntityID string `json:"entity_id"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// ComparisonResult is the derived head-to-head view over two entity
// snapshots. MetricsA and MetricsB reference the inputs rather than copy
// them; the comparison is a view, not a snapshot owner. Winner is nil on a
// sentiment tie.
type ComparisonResult struct {
	Aspects         []AspectComparison `json:"aspects"`
	VolumeBreakdown []VolumeBreakdown  `json:"volume_breakdown"`
	MetricsA        *EntityMetrics     `json:"metrics_a"`
	MetricsB        *EntityMetrics     `json:"metrics_b"`
	Winner          *string            `json:"winner"`
}
