package comparison

import "monitor-srv/internal/model"

// Compare builds the symmetric comparison view over two normalized
// snapshots.
//
// The aspect axis is the union of both sides' aspects, ordered
// first-seen-in-A then remaining-from-B, so repeated calls over the same
// inputs yield an identical sequence. An aspect missing on one side scores
// 0 there instead of being dropped, which keeps both entities on identical
// chart axes. The winner is the side with strictly greater positive
// percentage, nil on a tie. The result references its inputs, it does not
// copy them.
func Compare(a, b *model.EntityMetrics) model.ComparisonResult {
	result := model.ComparisonResult{
		MetricsA: a,
		MetricsB: b,
		VolumeBreakdown: []model.VolumeBreakdown{
			{
				EntityID: a.EntityID,
				Positive: a.SentimentCounts.Positive,
				Negative: a.SentimentCounts.Negative,
				Neutral:  a.SentimentCounts.Neutral,
			},
			{
				EntityID: b.EntityID,
				Positive: b.SentimentCounts.Positive,
				Negative: b.SentimentCounts.Negative,
				Neutral:  b.SentimentCounts.Neutral,
			},
		},
	}

	for _, asp := range a.Aspects {
		scoreB, _ := b.AspectScore(asp.Name)
		result.Aspects = append(result.Aspects, model.AspectComparison{
			Name:   asp.Name,
			ScoreA: asp.Score,
			ScoreB: scoreB,
			Scale:  model.AspectScale,
		})
	}
	for _, asp := range b.Aspects {
		if _, seen := a.AspectScore(asp.Name); seen {
			continue
		}
		result.Aspects = append(result.Aspects, model.AspectComparison{
			Name:   asp.Name,
			ScoreA: 0,
			ScoreB: asp.Score,
			Scale:  model.AspectScale,
		})
	}

	switch {
	case a.SentimentPercent > b.SentimentPercent:
		winner := a.EntityID
		result.Winner = &winner
	case b.SentimentPercent > a.SentimentPercent:
		winner := b.EntityID
		result.Winner = &winner
	}

	return result
}
