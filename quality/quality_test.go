package quality

import (
	"fmt"
	"strings"
	"testing"
)

// variedText builds a text of n words drawn from a rotating vocabulary,
// seven words per sentence, so no single word dominates.
func variedText(n int) string {
	const vocab = 50
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "slv%d", i%vocab)
		if (i+1)%7 == 0 {
			b.WriteString(". ")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func TestAnalyzeShortTextScoresZero(t *testing.T) {
	a := NewAnalyzer()

	res := a.Analyze("too short to analyze", false)
	if res.ReadabilityScore != 0 {
		t.Fatalf("expected zero readability, got %.2f", res.ReadabilityScore)
	}
	if len(res.KeywordDensity) != 0 {
		t.Fatalf("expected no keywords for short text, got %v", res.KeywordDensity)
	}
}

func TestAnalyzeVariedTextIsReadable(t *testing.T) {
	a := NewAnalyzer()

	res := a.Analyze(variedText(350), false)
	if res.ReadabilityScore < TargetReadability {
		t.Fatalf("expected readable text, got score %.2f", res.ReadabilityScore)
	}
	if len(res.OverusedWords) != 0 {
		t.Fatalf("expected no overused words, got %v", res.OverusedWords)
	}
	if len(res.KeywordDensity) == 0 {
		t.Fatal("expected keyword density to be populated")
	}
	if !strings.Contains(res.HTMLReport, "quality-report") {
		t.Fatalf("unexpected report: %s", res.HTMLReport)
	}
}

func TestAnalyzeStripsHTML(t *testing.T) {
	a := &Analyzer{MinWordCount: 3}

	res := a.Analyze("<p>первое предложение тут</p> <b>второе предложение тоже</b>", true)
	for w := range res.KeywordDensity {
		if strings.ContainsAny(w, "<>") {
			t.Fatalf("keyword contains markup: %q", w)
		}
	}
}

func TestCheckerRejectsOverusedWords(t *testing.T) {
	text := variedText(300) + strings.Repeat("spammy ", 20)

	ok, m := NewChecker().Check(text)
	if ok {
		t.Fatal("expected overused text to fail")
	}
	if len(m.OverusedWords) == 0 || m.OverusedWords[0] != "spammy" {
		t.Fatalf("expected spammy to be flagged, got %v", m.OverusedWords)
	}
	if len(m.Errors) == 0 {
		t.Fatal("expected errors to be reported")
	}
}

func TestCheckerRejectsShortText(t *testing.T) {
	ok, m := NewChecker().Check(variedText(50))
	if ok {
		t.Fatal("expected short text to fail")
	}
	if len(m.Errors) == 0 || m.Errors[0] != "article is too short" {
		t.Fatalf("expected explicit length error, got %v", m.Errors)
	}
}

func TestCheckerAcceptsVariedText(t *testing.T) {
	ok, m := NewChecker().Check(variedText(400))
	if !ok {
		t.Fatalf("expected text to pass, errors: %v (readability %.2f)", m.Errors, m.Readability)
	}
	if len(m.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", m.Errors)
	}
}

func TestKeywordsRankedByDensity(t *testing.T) {
	density := map[string]float64{
		"rare":     0.01,
		"frequent": 0.04,
		"middle":   0.02,
	}

	kw := Keywords(density)
	if len(kw) != 3 || kw[0] != "frequent" || kw[2] != "rare" {
		t.Fatalf("unexpected keyword order: %v", kw)
	}
}
