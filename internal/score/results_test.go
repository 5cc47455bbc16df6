package score

import (
	"math"
	"testing"

	"github.com/avezina/scrutiny/internal/model"
)

func TestRelevance_TitleWeighedOverSnippet(t *testing.T) {
	query := "solar energy"

	titleHit := model.SearchHit{Title: "Solar energy basics", Snippet: "unrelated text"}
	snippetHit := model.SearchHit{Title: "unrelated", Snippet: "all about solar energy"}

	titleRel := Relevance(query, titleHit)
	snippetRel := Relevance(query, snippetHit)

	if math.Abs(titleRel-0.7) > 1e-9 {
		t.Errorf("expected title-only relevance 0.7, got %v", titleRel)
	}
	if math.Abs(snippetRel-0.3) > 1e-9 {
		t.Errorf("expected snippet-only relevance 0.3, got %v", snippetRel)
	}
}

func TestRelevance_BothFieldsFullMatch(t *testing.T) {
	hit := model.SearchHit{
		Title:   "Solar energy storage",
		Snippet: "Solar energy storage explained in detail",
	}
	if rel := Relevance("solar energy storage", hit); math.Abs(rel-1.0) > 1e-9 {
		t.Errorf("expected full relevance 1.0, got %v", rel)
	}
}

func TestRelevance_DuplicateQueryTerms(t *testing.T) {
	hit := model.SearchHit{Title: "Solar panels"}

	// "solar" repeated collapses to one term of two, matching only in
	// the title: 0.7 * 1/2.
	if rel := Relevance("solar solar power", hit); math.Abs(rel-0.35) > 1e-9 {
		t.Errorf("expected deduplicated relevance 0.35, got %v", rel)
	}
	if single, doubled := Relevance("solar power", hit), Relevance("solar solar power", hit); single != doubled {
		t.Errorf("repeated term changed the score: %v vs %v", single, doubled)
	}
}

func TestRelevance_EmptyQuery(t *testing.T) {
	hit := model.SearchHit{Title: "anything", Snippet: "anything"}
	if rel := Relevance("", hit); rel != 0.5 {
		t.Errorf("expected 0.5 fallback for empty query, got %v", rel)
	}
	if rel := Relevance("   ", hit); rel != 0.5 {
		t.Errorf("expected 0.5 fallback for whitespace query, got %v", rel)
	}
}

func TestRelevance_SubstringMatch(t *testing.T) {
	// Term matching is substring-based, so "sun" matches "sunlight"
	hit := model.SearchHit{Title: "Harvesting sunlight at scale", Snippet: ""}
	if rel := Relevance("sun", hit); math.Abs(rel-0.7) > 1e-9 {
		t.Errorf("expected substring match relevance 0.7, got %v", rel)
	}
}

func TestContentQuality_LengthBonuses(t *testing.T) {
	bare := model.SearchHit{Title: "short", Snippet: "short", URL: "https://example.com"}
	if q := ContentQuality(bare); q != 0.5 {
		t.Errorf("expected base quality 0.5, got %v", q)
	}

	long := model.SearchHit{
		Title:   "A title comfortably longer than twenty characters",
		Snippet: string(make([]byte, 150)),
		URL:     "https://example.com",
	}
	if q := ContentQuality(long); math.Abs(q-0.8) > 1e-9 {
		t.Errorf("expected 0.5+0.2+0.1=0.8, got %v", q)
	}
}

func TestContentQuality_DomainBonusPrecedence(t *testing.T) {
	// .org and wikipedia both match, but the TLD bonus takes precedence
	// and the two bonuses never stack
	hit := model.SearchHit{Title: "t", Snippet: "s", URL: "https://wikipedia.org/wiki/Solar"}
	if q := ContentQuality(hit); math.Abs(q-0.8) > 1e-9 {
		t.Errorf("expected 0.5+0.3 with no stacking, got %v", q)
	}

	arxiv := model.SearchHit{Title: "t", Snippet: "s", URL: "https://arxiv.com/abs/1234"}
	if q := ContentQuality(arxiv); math.Abs(q-0.7) > 1e-9 {
		t.Errorf("expected 0.5+0.2 for arxiv, got %v", q)
	}
}

func TestContentQuality_Capped(t *testing.T) {
	hit := model.SearchHit{
		Title:   "A title comfortably longer than twenty characters",
		Snippet: string(make([]byte, 150)),
		URL:     "https://research.university.edu/paper",
	}
	if q := ContentQuality(hit); q != 1.0 {
		t.Errorf("expected capped quality 1.0, got %v", q)
	}
}

func TestClassifySource_PriorityOrder(t *testing.T) {
	cases := []struct {
		url  string
		want model.SourceType
	}{
		{"https://mit.edu/research", model.SourceAcademic},
		{"https://cdc.gov/data", model.SourceGovernment},
		{"https://example.org/page", model.SourceOrganization},
		// .org outranks the wikipedia rule
		{"https://en.wikipedia.org/wiki/Go", model.SourceOrganization},
		{"https://en.wikipedia.com/wiki/Go", model.SourceEncyclopedia},
		{"https://arxiv.com/abs/2101.00001", model.SourcePreprint},
		{"https://bbc.com/article", model.SourceNews},
		{"https://reuters.com/article", model.SourceNews},
		{"https://example.com/blog", model.SourceGeneral},
	}

	for _, tc := range cases {
		if got := ClassifySource(tc.url); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.url, tc.want, got)
		}
	}
}

func TestScoreHits(t *testing.T) {
	hits := []model.SearchHit{
		{Title: "Solar basics", Snippet: "solar", URL: "https://example.edu"},
		{Title: "unrelated", Snippet: "unrelated", URL: "https://example.com"},
	}

	results := ScoreHits("solar", hits)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Relevance <= results[1].Relevance {
		t.Errorf("expected matching hit to outscore non-matching: %v vs %v",
			results[0].Relevance, results[1].Relevance)
	}
	if results[0].SourceType != model.SourceAcademic {
		t.Errorf("expected academic source type, got %s", results[0].SourceType)
	}
}

func TestRank_DescendingAndStable(t *testing.T) {
	results := []model.ScoredResult{
		{SearchHit: model.SearchHit{URL: "low"}, Relevance: 0.2, Quality: 0.2},
		{SearchHit: model.SearchHit{URL: "tie-a"}, Relevance: 0.5, Quality: 0.5},
		{SearchHit: model.SearchHit{URL: "tie-b"}, Relevance: 0.4, Quality: 0.6},
		{SearchHit: model.SearchHit{URL: "high"}, Relevance: 0.9, Quality: 0.9},
	}

	ranked := Rank(results)

	wantOrder := []string{"high", "tie-a", "tie-b", "low"}
	for i, want := range wantOrder {
		if ranked[i].URL != want {
			t.Errorf("position %d: expected %s, got %s", i, want, ranked[i].URL)
		}
	}

	// Input slice untouched
	if results[0].URL != "low" {
		t.Error("Rank must not mutate its input")
	}
}

func TestAvgRelevance(t *testing.T) {
	results := []model.ScoredResult{{Relevance: 0.4}, {Relevance: 0.8}}
	if got := AvgRelevance(results); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("expected 0.6, got %v", got)
	}
	if got := AvgRelevance(nil); got != 0.0 {
		t.Errorf("expected 0.0 for empty results, got %v", got)
	}
}
