package model

import "time"

// RawReview is the untrusted wire shape review-srv returns for one analyzed
// review. Upstream batches mix producer versions, so any field may be absent,
// the sentiment label may live at top level or inside the analysis list, and
// credibility may arrive as a 0..1 fraction (nested) or a 0..100 value
// (top level).
type RawReview struct {
	ID       string `json:"id"`
	EntityID string `json:"entity_id"`
	Platform string `json:"platform,omitempty"`
	Content  string `json:"content,omitempty"`

	// Sentiment
	Sentiment   string   `json:"sentiment,omitempty"`
	Credibility *float64 `json:"credibility,omitempty"`

	// ABSA
	Analysis []ReviewAnalysis `json:"analysis,omitempty"`

	// Engagement
	Likes    int `json:"likes,omitempty"`
	Comments int `json:"comments,omitempty"`
	Shares   int `json:"shares,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ReviewAnalysis is one analyzer pass over a review. The first entry in the
// list is the authoritative one.
type ReviewAnalysis struct {
	SentimentLabel   string             `json:"sentiment_label,omitempty"`
	SentimentScore   *float64           `json:"sentiment_score,omitempty"`
	CredibilityScore *float64           `json:"credibility_score,omitempty"`
	Aspects          []AspectAnnotation `json:"aspects,omitempty"`
}

// AspectAnnotation - ABSA annotation for a named aspect.
type AspectAnnotation struct {
	Aspect    string   `json:"aspect"`
	Sentiment string   `json:"sentiment,omitempty"`
	Score     *float64 `json:"score,omitempty"`
}
