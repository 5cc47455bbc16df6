package validate

import (
	"strings"
	"testing"

	"github.com/avezina/scrutiny/internal/model"
)

func TestRequiredComponents(t *testing.T) {
	for _, style := range []string{"apa", "APA", "mla", "chicago"} {
		req := RequiredComponents(style)
		if len(req) != 4 {
			t.Errorf("%s: expected 4 required components, got %v", style, req)
		}
		if req[len(req)-1] != "source" {
			t.Errorf("%s: expected source as required component, got %v", style, req)
		}
	}

	req := RequiredComponents("vancouver")
	if len(req) != 3 {
		t.Errorf("unknown style: expected common 3 components, got %v", req)
	}
}

func TestScoreComponents_AllPresent(t *testing.T) {
	cit := &model.Citation{
		Components: model.Components{
			Author:  "Smith, John",
			Title:   "A Study",
			Year:    "2020",
			Journal: "Nature",
		},
	}

	score := ScoreComponents(cit, RequiredComponents("apa"))
	Finalize(cit, score)

	if cit.QualityScore != 1.0 {
		t.Errorf("expected score 1.0, got %v", cit.QualityScore)
	}
	if !cit.IsValid {
		t.Error("expected citation to be valid")
	}
	if len(cit.Issues) != 0 {
		t.Errorf("expected no issues, got %v", cit.Issues)
	}
}

func TestScoreComponents_URLSatisfiesSource(t *testing.T) {
	// Source is a proxy: a URL counts when there is no journal, and the
	// URL also earns its own bonus.
	cit := &model.Citation{
		Components: model.Components{
			Author: "Smith, John",
			Title:  "A Study",
			Year:   "2020",
			URL:    "https://example.com",
		},
	}

	score := ScoreComponents(cit, RequiredComponents("apa"))
	Finalize(cit, score)

	if cit.QualityScore != 1.0 {
		t.Errorf("expected capped score 1.0, got %v", cit.QualityScore)
	}
}

func TestScoreComponents_ThreeOfFourIsBoundaryValid(t *testing.T) {
	// author+title+year without a source: 3/4 = 0.75, just above the
	// 0.7 validity threshold
	cit := &model.Citation{
		Components: model.Components{
			Author: "Smith, John",
			Title:  "A Study",
			Year:   "2020",
		},
	}

	score := ScoreComponents(cit, RequiredComponents("apa"))
	Finalize(cit, score)

	if cit.QualityScore < 0.749 || cit.QualityScore > 0.751 {
		t.Errorf("expected score 0.75, got %v", cit.QualityScore)
	}
	if !cit.IsValid {
		t.Error("expected 0.75 to clear the validity threshold")
	}
	if len(cit.Issues) != 1 || cit.Issues[0] != "Missing source" {
		t.Errorf("expected single missing-source issue, got %v", cit.Issues)
	}
}

func TestScoreComponents_TwoOfFourInvalid(t *testing.T) {
	cit := &model.Citation{
		Components: model.Components{
			Author: "Smith, John",
			Year:   "2020",
		},
	}

	score := ScoreComponents(cit, RequiredComponents("apa"))
	Finalize(cit, score)

	if cit.QualityScore != 0.5 {
		t.Errorf("expected score 0.5, got %v", cit.QualityScore)
	}
	if cit.IsValid {
		t.Error("expected citation to be invalid")
	}
}

func TestScoreComponents_DOIBonus(t *testing.T) {
	cit := &model.Citation{
		Components: model.Components{
			Author: "Smith, John",
			Title:  "A Study",
			Year:   "2020",
			DOI:    "10.1234/x",
		},
	}

	score := ScoreComponents(cit, RequiredComponents("apa"))
	Finalize(cit, score)

	// 0.75 + 0.10 DOI bonus
	if cit.QualityScore < 0.849 || cit.QualityScore > 0.851 {
		t.Errorf("expected score 0.85, got %v", cit.QualityScore)
	}

	found := false
	for _, s := range cit.Strengths {
		if s == "Includes DOI" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DOI strength, got %v", cit.Strengths)
	}
}

func TestApplyURLCheck(t *testing.T) {
	cit := &model.Citation{}
	score := ApplyURLCheck(cit, &model.URLCheck{Reachable: true, StatusCode: 200}, 0.6)
	if score < 0.699 || score > 0.701 {
		t.Errorf("expected reachable bonus to yield 0.7, got %v", score)
	}

	cit2 := &model.Citation{}
	score2 := ApplyURLCheck(cit2, &model.URLCheck{Reachable: false, Error: "HTTP 404"}, 0.6)
	if score2 != 0.6 {
		t.Errorf("expected unreachable URL to leave score at 0.6, got %v", score2)
	}
	if len(cit2.Issues) != 1 || !strings.Contains(cit2.Issues[0], "HTTP 404") {
		t.Errorf("expected URL issue mentioning status, got %v", cit2.Issues)
	}
}

func TestOverallQuality_EmptyBatch(t *testing.T) {
	if q := OverallQuality(nil); q != 0.0 {
		t.Errorf("expected 0.0 for empty batch, got %v", q)
	}
}

func TestSummarize(t *testing.T) {
	citations := []model.Citation{
		{QualityScore: 1.0, IsValid: true},
		{QualityScore: 0.5, IsValid: false},
	}

	s := Summarize(citations)
	if s.Total != 2 || s.Valid != 1 {
		t.Errorf("expected 2 total / 1 valid, got %d/%d", s.Total, s.Valid)
	}
	if s.ValidationRate != 0.5 {
		t.Errorf("expected validation rate 0.5, got %v", s.ValidationRate)
	}
	if s.OverallQuality != 0.75 {
		t.Errorf("expected overall quality 0.75, got %v", s.OverallQuality)
	}
	if !s.NeedsImprovement {
		t.Error("expected needs-improvement flag")
	}

	empty := Summarize(nil)
	if empty.Total != 0 || empty.ValidationRate != 0.0 || empty.OverallQuality != 0.0 {
		t.Errorf("expected zeroed summary for empty batch, got %+v", empty)
	}
}
