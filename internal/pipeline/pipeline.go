package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avezina/scrutiny/internal/cache"
	"github.com/avezina/scrutiny/internal/extract"
	"github.com/avezina/scrutiny/internal/llm"
	"github.com/avezina/scrutiny/internal/model"
	"github.com/avezina/scrutiny/internal/score"
	"github.com/avezina/scrutiny/internal/search"
	"github.com/avezina/scrutiny/internal/validate"
)

// nowFunc is injectable for tests
var nowFunc = time.Now

// Pipeline wires the deterministic toolkit together: citation
// validation, fact checking, search scoring, and rendering. All state
// for a run lives in the caller-owned Session.
type Pipeline struct {
	checker    *validate.URLChecker
	metadata   *extract.MetadataFetcher
	provider   search.Provider
	summarizer *llm.Summarizer
	renderer   *Renderer
	config     *model.Config
	session    *Session
}

// Options toggles the optional, I/O-performing pipeline steps
type Options struct {
	CheckURLs  bool // HEAD-check citation URLs
	CheckDOIs  bool // resolve DOIs through the handle service
	EnrichMeta bool // fetch page metadata for reachable URLs
	Summarize  bool // attach LLM summary to citation reports
}

// NewPipeline creates a pipeline from configuration. The search
// provider and summarizer are optional; construction failures there
// disable the feature and are recorded in the session rather than
// failing the run.
func NewPipeline(cfg *model.Config, session *Session) *Pipeline {
	store := cache.FromConfig(cfg.Cache)

	var provider search.Provider
	if cfg.Search.APIKey != "" {
		p, err := search.NewProvider(cfg.Search, store)
		if err != nil {
			session.RecordError(fmt.Errorf("search provider disabled: %w", err))
		} else {
			provider = p
		}
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			session.RecordError(fmt.Errorf("LLM summarizer disabled: %w", err))
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		checker: validate.NewURLChecker(
			cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.Concurrency.URLWorkers,
			cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst, store,
			cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy,
			cfg.HTTP.InsecureTLS),
		metadata: extract.NewMetadataFetcher(
			cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy,
			cfg.HTTP.InsecureTLS),
		provider:   provider,
		summarizer: summarizer,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
		session:    session,
	}
}

// ValidateCitations parses, scores and formats every citation in the
// input text. One citation's failures never abort its siblings.
func (p *Pipeline) ValidateCitations(ctx context.Context, text, style string, opts Options) (*model.CitationReport, error) {
	p.session.Advance("parse")
	raws := extract.ParseCitations(text)

	p.session.Advance("extract")
	required := validate.RequiredComponents(style)
	citations := make([]model.Citation, len(raws))
	scores := make([]float64, len(raws))
	for i, raw := range raws {
		citations[i] = model.Citation{
			Number:     i + 1,
			Raw:        raw,
			Components: extract.Components(raw),
		}
		scores[i] = validate.ScoreComponents(&citations[i], required)
	}

	if opts.CheckURLs {
		p.session.Advance("check_urls")
		p.applyURLChecks(ctx, citations, scores, opts.EnrichMeta)
	}

	// DOI resolution is advisory: it annotates the citation but never
	// moves the score
	if opts.CheckDOIs {
		p.session.Advance("check_dois")
		for i := range citations {
			doi := citations[i].Components.DOI
			if doi == "" {
				continue
			}
			if validate.CheckDOI(ctx, doi) {
				citations[i].Strengths = append(citations[i].Strengths, "DOI resolves")
			} else {
				citations[i].Issues = append(citations[i].Issues, "DOI does not resolve: "+doi)
			}
		}
	}

	p.session.Advance("score")
	var issues []string
	for i := range citations {
		validate.Finalize(&citations[i], scores[i])
		citations[i].Formatted = validate.FormatCitation(citations[i].Components, style)
		issues = append(issues, citations[i].Issues...)
	}

	summary := validate.Summarize(citations)

	report := &model.CitationReport{
		GeneratedAt:     nowFunc().UTC(),
		Style:           style,
		Input:           text,
		Citations:       citations,
		Summary:         summary,
		IssuesFound:     issues,
		Recommendations: validate.Recommendations(issues, summary.OverallQuality, style),
	}

	// LLM summary comes last and never affects the scores above
	if opts.Summarize && p.summarizer.IsEnabled() {
		p.session.Advance("summarize")
		llmSummary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			p.session.RecordError(fmt.Errorf("LLM summary: %w", err))
		} else {
			report.LLM = llmSummary
		}
	}

	p.session.Advance("done")
	return report, nil
}

// applyURLChecks runs concurrent reachability checks for all citations
// with URLs and folds the results into their scores
func (p *Pipeline) applyURLChecks(ctx context.Context, citations []model.Citation, scores []float64, enrich bool) {
	var urls []string
	var idx []int
	for i := range citations {
		if citations[i].Components.URL != "" {
			urls = append(urls, citations[i].Components.URL)
			idx = append(idx, i)
		}
	}
	if len(urls) == 0 {
		return
	}

	checks := p.checker.CheckBatch(ctx, urls)
	for j, check := range checks {
		if check == nil {
			continue
		}
		i := idx[j]
		scores[i] = validate.ApplyURLCheck(&citations[i], check, scores[i])

		if enrich && check.Reachable {
			meta, err := p.metadata.Fetch(ctx, check.URL)
			if err != nil {
				p.session.RecordError(fmt.Errorf("metadata %s: %w", check.URL, err))
				continue
			}
			citations[i].PageMeta = meta
		}
	}
}

// ValidateFile validates a bibliography file with the configured style
// and URL checking enabled. Implements worker.Validator for batch runs.
func (p *Pipeline) ValidateFile(ctx context.Context, path string) (*model.CitationReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read citations: %w", err)
	}
	style := p.config.Style
	if style == "" {
		style = "APA"
	}
	return p.ValidateCitations(ctx, string(data), style, Options{CheckURLs: true})
}

// CheckClaims verifies each claim in the text against the source corpus
func (p *Pipeline) CheckClaims(claimsText, sourcesText string) *model.FactCheckReport {
	p.session.Advance("parse_claims")
	claims := extract.ParseClaims(claimsText)

	p.session.Advance("verify")
	verifications := score.VerifyClaims(claims, sourcesText)

	p.session.Advance("done")
	return &model.FactCheckReport{
		GeneratedAt:        nowFunc().UTC(),
		TotalClaims:        len(claims),
		Verifications:      verifications,
		OverallReliability: score.OverallReliability(verifications),
		Methodology:        "cross-reference verification with confidence scoring",
	}
}

// SearchAndRank queries the configured provider, scores every hit and
// ranks the results
func (p *Pipeline) SearchAndRank(ctx context.Context, query string, maxResults int) (*model.SearchReport, error) {
	if p.provider == nil {
		return nil, fmt.Errorf("no search provider configured (set SERPER_API_KEY)")
	}
	if maxResults <= 0 {
		maxResults = p.config.Search.MaxResults
	}

	p.session.Advance("search")
	hits, err := p.provider.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	p.session.Advance("rank")
	results := score.Rank(score.ScoreHits(query, hits))

	p.session.Advance("done")
	return &model.SearchReport{
		GeneratedAt:  nowFunc().UTC(),
		Query:        query,
		Region:       p.config.Search.Region,
		Results:      results,
		AvgRelevance: score.AvgRelevance(results),
	}, nil
}

// Renderer exposes the pipeline's renderer for output
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}
