package http

import "monitor-srv/internal/metrics"

// =====================================================
// Request DTOs
// =====================================================

type getEntityMetricsReq struct {
	EntityID string
	Refresh  bool
}

func (r getEntityMetricsReq) toInput() metrics.EntityMetricsInput {
	return metrics.EntityMetricsInput{
		EntityID:     r.EntityID,
		ForceRefresh: r.Refresh,
	}
}

type invalidateReq struct {
	EntityID string
}

// =====================================================
// Response DTOs
// =====================================================

type sentimentCountsResp struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type aspectMetricResp struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

type entityMetricsResp struct {
	EntityID           string              `json:"entity_id"`
	Total              int                 `json:"total"`
	SentimentCounts    sentimentCountsResp `json:"sentiment_counts"`
	SentimentPercent   float64             `json:"sentiment_percent"`
	CredibilityAverage float64             `json:"credibility_average"`
	Aspects            []aspectMetricResp  `json:"aspects"`
	CacheHit           bool                `json:"cache_hit"`
	Stale              bool                `json:"stale,omitempty"`
}

type invalidateResp struct {
	EntityID string `json:"entity_id"`
}

func (h *handler) newEntityMetricsResp(output metrics.EntityMetricsOutput) entityMetricsResp {
	m := output.Metrics

	resp := entityMetricsResp{
		EntityID: m.EntityID,
		Total:    m.Total,
		SentimentCounts: sentimentCountsResp{
			Positive: m.SentimentCounts.Positive,
			Neutral:  m.SentimentCounts.Neutral,
			Negative: m.SentimentCounts.Negative,
		},
		SentimentPercent:   m.SentimentPercent,
		CredibilityAverage: m.CredibilityAverage,
		Aspects:            make([]aspectMetricResp, len(m.Aspects)),
		CacheHit:           output.CacheHit,
		Stale:              output.Stale,
	}
	for i, a := range m.Aspects {
		resp.Aspects[i] = aspectMetricResp{Name: a.Name, Score: a.Score, Count: a.Count}
	}
	return resp
}
