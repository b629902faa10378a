package model

// SentimentCounts - per-class review counts for one entity.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Sum returns positive + neutral + negative.
func (c SentimentCounts) Sum() int {
	return c.Positive + c.Neutral + c.Negative
}

// AspectMetric is the derived score for one named aspect.
// Score is on the 0..5 scale used by the dashboard charts.
type AspectMetric struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// EntityMetrics is the canonical per-entity snapshot derived from raw
// reviews. It is recomputed on every normalization call and never mutated
// in place. Aspects keep the order each aspect was first observed in the
// input so repeated runs over the same batch produce an identical sequence.
type EntityMetrics struct {
	EntityID           string          `json:"entity_id"`
	SentimentCounts    SentimentCounts `json:"sentiment_counts"`
	SentimentPercent   float64         `json:"sentiment_percent"`
	CredibilityAverage float64         `json:"credibility_average"`
	Total              int             `json:"total"`
	Aspects            []AspectMetric  `json:"aspects"`
}

// AspectScore looks up an aspect score by name.
func (m EntityMetrics) AspectScore(name string) (float64, bool) {
	for _, a := range m.Aspects {
		if a.Name == name {
			return a.Score, true
		}
	}
	return 0, false
}
