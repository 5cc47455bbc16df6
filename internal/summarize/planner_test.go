package summarize

import (
	"strings"
	"testing"
	"time"
)

// repeatWords builds content with exactly n whitespace-separated words
func repeatWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestPlan_BriefTargets(t *testing.T) {
	content := repeatWords(2000)

	plan := Plan(content, TypeBrief)

	if plan.WordCount != 2000 {
		t.Errorf("expected 2000 words, got %d", plan.WordCount)
	}
	if plan.CharCount != len(content) {
		t.Errorf("expected %d chars, got %d", len(content), plan.CharCount)
	}
	// min(100, 2000/10) = 100
	if plan.TargetLength != 100 {
		t.Errorf("expected target 100, got %d", plan.TargetLength)
	}
	if plan.CompressionRatio != 0.05 {
		t.Errorf("expected ratio 0.05, got %v", plan.CompressionRatio)
	}
	if plan.ReadingTime != "10 minutes" {
		t.Errorf("expected 10 minutes, got %q", plan.ReadingTime)
	}
}

func TestPlan_ShortDocumentCapsTarget(t *testing.T) {
	// 50 words: brief target is 50/10 = 5, below the 100 cap
	plan := Plan(repeatWords(50), TypeBrief)
	if plan.TargetLength != 5 {
		t.Errorf("expected target 5, got %d", plan.TargetLength)
	}
}

func TestPlan_PerTypeTargets(t *testing.T) {
	content := repeatWords(10000)

	cases := []struct {
		summaryType string
		target      int
	}{
		{TypeBrief, 100},
		{TypeComprehensive, 300},
		{TypeBulletPoints, 150},
		{TypeAbstract, 250},
	}

	for _, tc := range cases {
		plan := Plan(content, tc.summaryType)
		if plan.TargetLength != tc.target {
			t.Errorf("%s: expected target %d, got %d", tc.summaryType, tc.target, plan.TargetLength)
		}
		if plan.Instructions == "" {
			t.Errorf("%s: expected instructions", tc.summaryType)
		}
	}
}

func TestPlan_UnknownTypeDefaults(t *testing.T) {
	plan := Plan(repeatWords(5000), "haiku")

	if plan.TargetLength != 200 {
		t.Errorf("expected fixed 200-word target for unknown type, got %d", plan.TargetLength)
	}
	if plan.Instructions != instructions[TypeComprehensive] {
		t.Errorf("expected comprehensive instructions fallback, got %q", plan.Instructions)
	}
	if plan.SummaryType != "haiku" {
		t.Errorf("expected requested type to be echoed, got %q", plan.SummaryType)
	}
}

func TestPlan_EmptyContent(t *testing.T) {
	plan := Plan("", TypeBrief)

	if plan.WordCount != 0 || plan.CharCount != 0 {
		t.Errorf("expected zero counts, got %d words / %d chars", plan.WordCount, plan.CharCount)
	}
	if plan.CompressionRatio != 0.0 {
		t.Errorf("expected zero ratio for empty content, got %v", plan.CompressionRatio)
	}
	if plan.ReadingTime != "0 minutes" {
		t.Errorf("expected 0 minutes, got %q", plan.ReadingTime)
	}
}

func TestPlan_TimestampUTC(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	}
	defer func() { nowFunc = orig }()

	plan := Plan("some content here", TypeBrief)
	if plan.GeneratedAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", plan.GeneratedAt.Location())
	}
	if plan.GeneratedAt.Hour() != 11 {
		t.Errorf("expected 11:00 UTC, got %v", plan.GeneratedAt)
	}
}
