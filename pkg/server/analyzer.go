package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vectorprime/pkg/analysis"
	"vectorprime/pkg/catalog"
	"vectorprime/pkg/pdftext"
)

// Brief is what the analyzer "reads" out of a tender: a summary and the
// requirements to match against the catalog.
type Brief struct {
	Summary      string
	Requirements []string
}

// DemoBrief is returned for every document. Extraction runs, but the demo
// always tells the Blue Horizon story.
var DemoBrief = Brief{
	Summary: "Expansion project for Blue Horizon Corporate Wing requiring high-performance " +
		"exterior waterproofing and premium washable interior finishes.",
	Requirements: []string{
		"waterproofing",
		"10-year warranty",
		"washable",
		"anti-algal",
		"high gloss",
		"rust protection",
	},
}

// Analyzer turns an uploaded document into a priced recommendation.
// The catalog can be swapped while requests are in flight.
type Analyzer struct {
	mu            sync.RWMutex
	catalog       catalog.Catalog
	brief         Brief
	volume        int
	thinkingDelay time.Duration
	extract       func([]byte) string
}

// AnalyzerOptions tune an Analyzer. Zero values fall back to defaults.
type AnalyzerOptions struct {
	Volume        int
	ThinkingDelay time.Duration
	Brief         *Brief
}

// NewAnalyzer builds an Analyzer over cat.
func NewAnalyzer(cat catalog.Catalog, opts AnalyzerOptions) *Analyzer {
	a := &Analyzer{
		catalog:       cat,
		brief:         DemoBrief,
		volume:        opts.Volume,
		thinkingDelay: opts.ThinkingDelay,
		extract:       pdftext.ExtractOrEmpty,
	}
	if opts.Brief != nil {
		a.brief = *opts.Brief
	}
	if a.volume <= 0 {
		a.volume = catalog.DefaultVolume
	}
	if a.thinkingDelay < 0 {
		a.thinkingDelay = 0
	}
	return a
}

// Analyze waits out the thinking delay, extracts the document text and
// prices the brief against the catalog. It returns ctx.Err() if the caller
// goes away first.
func (a *Analyzer) Analyze(ctx context.Context, filename string, doc []byte) (analysis.Result, error) {
	if a.thinkingDelay > 0 {
		timer := time.NewTimer(a.thinkingDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return analysis.Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	text := a.extract(doc)
	slog.Debug("analysis_text_extracted", "filename", filename, "chars", len(text))

	quote := a.Catalog().Match(a.brief.Requirements, a.volume)

	products := make([]analysis.Product, 0, len(quote.Recommendations))
	for _, rec := range quote.Recommendations {
		products = append(products, analysis.Product{
			Name:       rec.Name,
			SKUID:      rec.SKUID,
			MatchScore: analysis.MatchScore(rec.MatchScore),
			UnitPrice:  rec.UnitPrice,
		})
	}

	requirements := make([]string, len(a.brief.Requirements))
	copy(requirements, a.brief.Requirements)

	return analysis.Result{
		Summary:             a.brief.Summary,
		Requirements:        requirements,
		RecommendedProducts: products,
		TotalEstimatedCost:  quote.TotalEstimatedCost,
	}, nil
}

// Catalog returns the catalog analyses are currently priced against.
func (a *Analyzer) Catalog() catalog.Catalog {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.catalog
}

// SetCatalog replaces the catalog for subsequent analyses.
func (a *Analyzer) SetCatalog(cat catalog.Catalog) {
	a.mu.Lock()
	a.catalog = cat
	a.mu.Unlock()
}
