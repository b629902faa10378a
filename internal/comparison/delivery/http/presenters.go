package http

import (
	"monitor-srv/internal/comparison"
	"monitor-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type compareReq struct {
	EntityA string `form:"entity_a" binding:"required"`
	EntityB string `form:"entity_b" binding:"required"`
	Refresh bool   `form:"refresh"`
}

func (r compareReq) toInput() comparison.CompareInput {
	return comparison.CompareInput{
		EntityIDA:    r.EntityA,
		EntityIDB:    r.EntityB,
		ForceRefresh: r.Refresh,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type aspectComparisonResp struct {
	Name   string  `json:"name"`
	ScoreA float64 `json:"score_a"`
	ScoreB float64 `json:"score_b"`
	Scale  float64 `json:"scale"`
}

type volumeBreakdownResp struct {
	EntityID string `json:"entity_id"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

type entitySideResp struct {
	EntityID           string  `json:"entity_id"`
	Total              int     `json:"total"`
	Positive           int     `json:"positive"`
	Neutral            int     `json:"neutral"`
	Negative           int     `json:"negative"`
	SentimentPercent   float64 `json:"sentiment_percent"`
	CredibilityAverage float64 `json:"credibility_average"`
	Stale              bool    `json:"stale,omitempty"`
}

type comparisonResp struct {
	Aspects         []aspectComparisonResp `json:"aspects"`
	VolumeBreakdown []volumeBreakdownResp  `json:"volume_breakdown"`
	MetricsA        entitySideResp         `json:"metrics_a"`
	MetricsB        entitySideResp         `json:"metrics_b"`
	Winner          *string                `json:"winner"`
}

func newEntitySideResp(m *model.EntityMetrics, stale bool) entitySideResp {
	return entitySideResp{
		EntityID:           m.EntityID,
		Total:              m.Total,
		Positive:           m.SentimentCounts.Positive,
		Neutral:            m.SentimentCounts.Neutral,
		Negative:           m.SentimentCounts.Negative,
		SentimentPercent:   m.SentimentPercent,
		CredibilityAverage: m.CredibilityAverage,
		Stale:              stale,
	}
}

func (h *handler) newComparisonResp(output comparison.CompareOutput) comparisonResp {
	result := output.Result

	resp := comparisonResp{
		Aspects:         make([]aspectComparisonResp, len(result.Aspects)),
		VolumeBreakdown: make([]volumeBreakdownResp, len(result.VolumeBreakdown)),
		MetricsA:        newEntitySideResp(result.MetricsA, output.StaleA),
		MetricsB:        newEntitySideResp(result.MetricsB, output.StaleB),
		Winner:          result.Winner,
	}
	for i, a := range result.Aspects {
		resp.Aspects[i] = aspectComparisonResp{Name: a.Name, ScoreA: a.ScoreA, ScoreB: a.ScoreB, Scale: a.Scale}
	}
	for i, v := range result.VolumeBreakdown {
		resp.VolumeBreakdown[i] = volumeBreakdownResp{
			EntityID: v.EntityID,
			Positive: v.Positive,
			Negative: v.Negative,
			Neutral:  v.Neutral,
		}
	}
	return resp
}
