package metrics

import (
	"math"
	"testing"

	"monitor-srv/internal/model"
)

func fptr(v float64) *float64 { return &v }

func floatEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestClassifySentiment(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"positive", SentimentPositive},
		{"POSITIVE", SentimentPositive},
		{"Positive_Strong", SentimentPositive},
		{"pos", SentimentPositive},
		{"negative", SentimentNegative},
		{"NEGATIVE", SentimentNegative},
		{"neg", SentimentNegative},
		{"slightly_negative", SentimentNegative},
		{"neutral", SentimentNeutral},
		{"mixed", SentimentNeutral},
		{"", SentimentNeutral},
		{"unknown-label", SentimentNeutral},
	}

	for _, tc := range cases {
		if got := ClassifySentiment(tc.label); got != tc.want {
			t.Errorf("ClassifySentiment(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestNormalizeSentimentCounts(t *testing.T) {
	t.Run("mixed labels", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Sentiment: "Positive"},
			{ID: "2", Sentiment: "neg"},
			{ID: "3", Sentiment: "NEGATIVE"},
			{ID: "4"},
		}

		m := Normalize("phone-a", reviews)

		if m.SentimentCounts.Positive != 1 {
			t.Errorf("Positive mismatch: got %d, want 1", m.SentimentCounts.Positive)
		}
		if m.SentimentCounts.Neutral != 1 {
			t.Errorf("Neutral mismatch: got %d, want 1", m.SentimentCounts.Neutral)
		}
		if m.SentimentCounts.Negative != 2 {
			t.Errorf("Negative mismatch: got %d, want 2", m.SentimentCounts.Negative)
		}
		if m.Total != 4 {
			t.Errorf("Total mismatch: got %d, want 4", m.Total)
		}
		if !floatEq(m.SentimentPercent, 25) {
			t.Errorf("SentimentPercent mismatch: got %.2f, want 25.00", m.SentimentPercent)
		}
	})

	t.Run("nested label wins over top-level", func(t *testing.T) {
		reviews := []model.RawReview{
			{
				ID:        "1",
				Sentiment: "negative",
				Analysis:  []model.ReviewAnalysis{{SentimentLabel: "positive"}},
			},
		}

		m := Normalize("phone-a", reviews)

		if m.SentimentCounts.Positive != 1 || m.SentimentCounts.Negative != 0 {
			t.Errorf("counts mismatch: got %+v, want positive=1 negative=0", m.SentimentCounts)
		}
	})

	t.Run("empty nested label falls back to top-level", func(t *testing.T) {
		reviews := []model.RawReview{
			{
				ID:        "1",
				Sentiment: "negative",
				Analysis:  []model.ReviewAnalysis{{CredibilityScore: fptr(0.5)}},
			},
		}

		m := Normalize("phone-a", reviews)

		if m.SentimentCounts.Negative != 1 {
			t.Errorf("Negative mismatch: got %d, want 1", m.SentimentCounts.Negative)
		}
	})

	t.Run("counts always sum to total", func(t *testing.T) {
		inputs := [][]model.RawReview{
			nil,
			{{ID: "1"}},
			{{ID: "1", Sentiment: "pos"}, {ID: "2", Sentiment: "garbage"}, {ID: "3", Sentiment: "neg"}},
			{{ID: "1", Analysis: []model.ReviewAnalysis{{SentimentLabel: "POS"}}}, {ID: "2"}},
		}

		for _, reviews := range inputs {
			m := Normalize("e", reviews)
			if m.SentimentCounts.Sum() != m.Total {
				t.Errorf("sum mismatch: got %d, want total %d", m.SentimentCounts.Sum(), m.Total)
			}
		}
	})
}

func TestNormalizeEmptyInput(t *testing.T) {
	m := Normalize("phone-a", nil)

	if m.Total != 0 {
		t.Errorf("Total mismatch: got %d, want 0", m.Total)
	}
	if !floatEq(m.SentimentPercent, 0) {
		t.Errorf("SentimentPercent mismatch: got %f, want 0", m.SentimentPercent)
	}
	if !floatEq(m.CredibilityAverage, 0) {
		t.Errorf("CredibilityAverage mismatch: got %f, want 0", m.CredibilityAverage)
	}
	if len(m.Aspects) != 0 {
		t.Errorf("Aspects should be empty, got %d entries", len(m.Aspects))
	}
	if m.EntityID != "phone-a" {
		t.Errorf("EntityID mismatch: got %s, want phone-a", m.EntityID)
	}
}

func TestNormalizeCredibility(t *testing.T) {
	t.Run("nested fraction scales to 0-100", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Analysis: []model.ReviewAnalysis{{CredibilityScore: fptr(0.87)}}},
		}

		m := Normalize("e", reviews)

		if !floatEq(m.CredibilityAverage, 87) {
			t.Errorf("CredibilityAverage mismatch: got %.2f, want 87.00", m.CredibilityAverage)
		}
	})

	t.Run("nested wins over top-level", func(t *testing.T) {
		reviews := []model.RawReview{
			{
				ID:          "1",
				Credibility: fptr(20),
				Analysis:    []model.ReviewAnalysis{{CredibilityScore: fptr(0.9)}},
			},
		}

		m := Normalize("e", reviews)

		if !floatEq(m.CredibilityAverage, 90) {
			t.Errorf("CredibilityAverage mismatch: got %.2f, want 90.00", m.CredibilityAverage)
		}
	})

	t.Run("missing credibility contributes zero", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Credibility: fptr(80)},
			{ID: "2"},
		}

		m := Normalize("e", reviews)

		if !floatEq(m.CredibilityAverage, 40) {
			t.Errorf("CredibilityAverage mismatch: got %.2f, want 40.00", m.CredibilityAverage)
		}
	})

	t.Run("out of range values are clamped", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Credibility: fptr(250)},
			{ID: "2", Credibility: fptr(-10)},
		}

		m := Normalize("e", reviews)

		if !floatEq(m.CredibilityAverage, 50) {
			t.Errorf("CredibilityAverage mismatch: got %.2f, want 50.00", m.CredibilityAverage)
		}
	})
}

func TestNormalizeAspects(t *testing.T) {
	t.Run("first-seen order is preserved", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Analysis: []model.ReviewAnalysis{{Aspects: []model.AspectAnnotation{
				{Aspect: "Battery", Score: fptr(4)},
				{Aspect: "Camera", Score: fptr(3)},
			}}}},
			{ID: "2", Analysis: []model.ReviewAnalysis{{Aspects: []model.AspectAnnotation{
				{Aspect: "Screen", Score: fptr(5)},
				{Aspect: "Battery", Score: fptr(2)},
			}}}},
		}

		m := Normalize("e", reviews)

		wantOrder := []string{"Battery", "Camera", "Screen"}
		if len(m.Aspects) != len(wantOrder) {
			t.Fatalf("Aspects length mismatch: got %d, want %d", len(m.Aspects), len(wantOrder))
		}
		for i, name := range wantOrder {
			if m.Aspects[i].Name != name {
				t.Errorf("Aspects[%d] mismatch: got %s, want %s", i, m.Aspects[i].Name, name)
			}
		}
	})

	t.Run("repeated aspects are averaged", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Analysis: []model.ReviewAnalysis{{Aspects: []model.AspectAnnotation{
				{Aspect: "Battery", Score: fptr(4)},
			}}}},
			{ID: "2", Analysis: []model.ReviewAnalysis{{Aspects: []model.AspectAnnotation{
				{Aspect: "Battery", Score: fptr(2)},
			}}}},
		}

		m := Normalize("e", reviews)

		score, ok := m.AspectScore("Battery")
		if !ok {
			t.Fatal("Battery aspect missing")
		}
		if !floatEq(score, 3) {
			t.Errorf("Battery score mismatch: got %.2f, want 3.00", score)
		}
		if m.Aspects[0].Count != 2 {
			t.Errorf("Battery count mismatch: got %d, want 2", m.Aspects[0].Count)
		}
	})

	t.Run("label fallback when score is absent", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Analysis: []model.ReviewAnalysis{{Aspects: []model.AspectAnnotation{
				{Aspect: "Battery", Sentiment: "positive"},
				{Aspect: "Camera", Sentiment: "negative"},
				{Aspect: "Screen"},
			}}}},
		}

		m := Normalize("e", reviews)

		for _, tc := range []struct {
			name string
			want float64
		}{
			{"Battery", 5.0},
			{"Camera", 0.0},
			{"Screen", 2.5},
		} {
			score, ok := m.AspectScore(tc.name)
			if !ok {
				t.Fatalf("%s aspect missing", tc.name)
			}
			if !floatEq(score, tc.want) {
				t.Errorf("%s score mismatch: got %.2f, want %.2f", tc.name, score, tc.want)
			}
		}
	})

	t.Run("no annotations yields no aspects", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Sentiment: "positive"},
			{ID: "2", Sentiment: "negative", Analysis: []model.ReviewAnalysis{{SentimentLabel: "neg"}}},
		}

		m := Normalize("e", reviews)

		if len(m.Aspects) != 0 {
			t.Errorf("Aspects should be empty, got %d entries", len(m.Aspects))
		}
	})

	t.Run("blank aspect names are skipped", func(t *testing.T) {
		reviews := []model.RawReview{
			{ID: "1", Analysis: []model.ReviewAnalysis{{Aspects: []model.AspectAnnotation{
				{Aspect: "  ", Score: fptr(4)},
				{Aspect: "Battery", Score: fptr(4)},
			}}}},
		}

		m := Normalize("e", reviews)

		if len(m.Aspects) != 1 || m.Aspects[0].Name != "Battery" {
			t.Errorf("Aspects mismatch: got %+v, want only Battery", m.Aspects)
		}
	})
}
