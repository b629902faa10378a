package metrics

import (
	"strings"

	"monitor-srv/internal/model"
)

// Aspect score used when an annotation carries a sentiment label but no
// numeric score.
const (
	aspectScorePositive = 5.0
	aspectScoreNeutral  = 2.5
	aspectScoreNegative = 0.0
)

// Normalize folds a batch of raw reviews into the per-entity snapshot.
//
// The input is untrusted: reviews arrive from mixed producer versions, so
// every field is optional and malformed fields degrade per field instead of
// dropping the record. A missing or unrecognized sentiment label counts as
// neutral, a missing credibility contributes zero to the average, and aspect
// scores come only from explicit annotations. The result for an empty batch
// is all zeros, never NaN.
func Normalize(entityID string, reviews []model.RawReview) model.EntityMetrics {
	m := model.EntityMetrics{EntityID: entityID, Total: len(reviews)}

	var credibilitySum float64
	aspectIdx := make(map[string]int)

	for _, r := range reviews {
		switch ClassifySentiment(reviewSentimentLabel(r)) {
		case SentimentPositive:
			m.SentimentCounts.Positive++
		case SentimentNegative:
			m.SentimentCounts.Negative++
		default:
			m.SentimentCounts.Neutral++
		}

		credibilitySum += reviewCredibility(r)

		for _, an := range r.Analysis {
			for _, asp := range an.Aspects {
				name := strings.TrimSpace(asp.Aspect)
				if name == "" {
					continue
				}
				score := annotationScore(asp)
				if i, ok := aspectIdx[name]; ok {
					m.Aspects[i].Score += score
					m.Aspects[i].Count++
					continue
				}
				aspectIdx[name] = len(m.Aspects)
				m.Aspects = append(m.Aspects, model.AspectMetric{Name: name, Score: score, Count: 1})
			}
		}
	}

	if m.Total > 0 {
		m.SentimentPercent = float64(m.SentimentCounts.Positive) / float64(m.Total) * 100
		m.CredibilityAverage = credibilitySum / float64(m.Total)
	}

	// Aspect scores accumulated as sums above, averaged here.
	for i := range m.Aspects {
		m.Aspects[i].Score /= float64(m.Aspects[i].Count)
	}

	return m
}

// ClassifySentiment maps a free-form label onto one of the three buckets.
// Matching is a case-insensitive substring check so upstream label drift
// ("POSITIVE", "Positive_Strong") still lands in the right bucket. An empty
// or unrecognized label is neutral.
func ClassifySentiment(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "pos"):
		return SentimentPositive
	case strings.Contains(l, "neg"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// reviewSentimentLabel picks the label to classify. The nested analysis
// label wins over the top-level one.
func reviewSentimentLabel(r model.RawReview) string {
	if len(r.Analysis) > 0 && r.Analysis[0].SentimentLabel != "" {
		return r.Analysis[0].SentimentLabel
	}
	return r.Sentiment
}

// reviewCredibility resolves one review's credibility on the 0..100 scale.
// The nested analysis score is a 0..1 fraction and wins over the top-level
// value, which is already 0..100. Absent on both sides contributes 0.
func reviewCredibility(r model.RawReview) float64 {
	if len(r.Analysis) > 0 && r.Analysis[0].CredibilityScore != nil {
		return clamp(*r.Analysis[0].CredibilityScore*100, 0, 100)
	}
	if r.Credibility != nil {
		return clamp(*r.Credibility, 0, 100)
	}
	return 0
}

// annotationScore resolves one aspect annotation to the 0..5 scale, falling
// back to the annotation's sentiment label when no numeric score is present.
func annotationScore(a model.AspectAnnotation) float64 {
	if a.Score != nil {
		return clamp(*a.Score, 0, model.AspectScale)
	}
	switch ClassifySentiment(a.Sentiment) {
	case SentimentPositive:
		return aspectScorePositive
	case SentimentNegative:
		return aspectScoreNegative
	default:
		return aspectScoreNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
