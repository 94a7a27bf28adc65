package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"vectorprime/pkg/catalog"
)

func TestAnalyzer_DemoResult(t *testing.T) {
	a := NewAnalyzer(catalog.Fallback(), AnalyzerOptions{})

	result, err := a.Analyze(context.Background(), "tender.pdf", []byte("not really a pdf"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Summary != DemoBrief.Summary {
		t.Errorf("Expected demo summary, got %q", result.Summary)
	}
	if len(result.Requirements) != 6 {
		t.Errorf("Expected 6 requirements, got %d", len(result.Requirements))
	}
	if len(result.RecommendedProducts) != 3 {
		t.Fatalf("Expected 3 products, got %d", len(result.RecommendedProducts))
	}
	first := result.RecommendedProducts[0]
	if first.Name != "Apex Ultima Protek" || first.MatchScore.String() != "98%" {
		t.Errorf("Expected Apex Ultima Protek at 98%%, got %s at %s", first.Name, first.MatchScore)
	}
	if result.TotalEstimatedCost != 960000 {
		t.Errorf("Expected total 960000, got %v", result.TotalEstimatedCost)
	}
}

func TestAnalyzer_ResultDoesNotAliasBrief(t *testing.T) {
	a := NewAnalyzer(catalog.Fallback(), AnalyzerOptions{})
	result, _ := a.Analyze(context.Background(), "a.pdf", nil)
	result.Requirements[0] = "mutated"

	if DemoBrief.Requirements[0] != "waterproofing" {
		t.Error("Expected DemoBrief to be unaffected by result mutation")
	}
}

func TestAnalyzer_CustomVolumeAndBrief(t *testing.T) {
	brief := Brief{Summary: "Small job", Requirements: []string{"washable"}}
	a := NewAnalyzer(catalog.Fallback(), AnalyzerOptions{Volume: 10, Brief: &brief})

	result, err := a.Analyze(context.Background(), "a.pdf", nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(result.RecommendedProducts) != 1 || result.RecommendedProducts[0].SKUID != "AP-ROY-001" {
		t.Fatalf("Expected only Royale Aspira, got %+v", result.RecommendedProducts)
	}
	if result.TotalEstimatedCost != 8500 {
		t.Errorf("Expected total 8500, got %v", result.TotalEstimatedCost)
	}
}

func TestAnalyzer_ThinkingDelayHonorsContext(t *testing.T) {
	a := NewAnalyzer(catalog.Fallback(), AnalyzerOptions{ThinkingDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := a.Analyze(ctx, "a.pdf", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Expected Analyze to return promptly on cancel")
	}
}

func TestAnalyzer_ExtractsText(t *testing.T) {
	a := NewAnalyzer(catalog.Fallback(), AnalyzerOptions{})
	var got []byte
	a.extract = func(doc []byte) string {
		got = doc
		return ""
	}

	if _, err := a.Analyze(context.Background(), "a.pdf", []byte("%PDF")); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if string(got) != "%PDF" {
		t.Errorf("Expected document to reach the extractor, got %q", got)
	}
}
