package quality

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Analysis thresholds
const (
	// MinWordCount is the floor below which a text is scored zero.
	MinWordCount = 300
	// overusedShare is the frequency share above which a word counts as
	// overused.
	overusedShare = 0.05
	// minKeywordLen ignores short words for keyword statistics.
	minKeywordLen = 3
	// maxKeywords caps the keyword list in reports and metadata.
	maxKeywords = 5
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	nonWordRe       = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	htmlTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// AnalysisResult is the outcome of a single text analysis pass.
type AnalysisResult struct {
	ReadabilityScore float64
	KeywordDensity   map[string]float64
	OverusedWords    []string
	HTMLReport       string
}

// Analyzer scores article text: readability on a 0..10 scale, keyword
// density, and overused words.
type Analyzer struct {
	MinWordCount int
}

// NewAnalyzer returns an analyzer with the default minimum word count.
func NewAnalyzer() *Analyzer {
	return &Analyzer{MinWordCount: MinWordCount}
}

// Analyze scores the given text. HTML input is stripped of tags first.
func (a *Analyzer) Analyze(text string, isHTML bool) AnalysisResult {
	if isHTML {
		text = htmlTagRe.ReplaceAllString(text, "")
	}

	words := strings.Fields(text)
	if len(words) < a.MinWordCount {
		return AnalysisResult{
			KeywordDensity: map[string]float64{},
			HTMLReport:     "<p>Text is too short</p>",
		}
	}

	readability := a.readability(text, words)
	density := keywordDensity(text)
	overused := overusedWords(density)

	return AnalysisResult{
		ReadabilityScore: readability,
		KeywordDensity:   density,
		OverusedWords:    overused,
		HTMLReport:       htmlReport(readability, density, overused),
	}
}

// readability combines sentence length, word length and complex-word
// ratio into a 0..10 score, with a structure bonus for texts of more
// than five sentences.
func (a *Analyzer) readability(text string, words []string) float64 {
	sentences := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 || len(words) == 0 {
		return 0
	}

	totalLen := 0
	complexWords := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		totalLen += n
		if n > 6 {
			complexWords++
		}
	}

	avgSentenceLen := float64(len(words)) / float64(sentences)
	avgWordLen := float64(totalLen) / float64(len(words))
	complexRatio := float64(complexWords) / float64(len(words))

	sentenceScore := max0(10 - avgSentenceLen/5)
	wordScore := max0(10 - avgWordLen)
	complexityScore := max0(10 - complexRatio*30)

	score := sentenceScore*0.3 + wordScore*0.3 + complexityScore*0.4
	if sentences > 5 {
		score += 2.0
	}

	if score > 10 {
		return 10
	}
	return max0(score)
}

// Keywords returns the top keywords from a density map, highest density
// first, capped at maxKeywords.
func Keywords(density map[string]float64) []string {
	type kd struct {
		word    string
		density float64
	}

	ranked := make([]kd, 0, len(density))
	for w, d := range density {
		ranked = append(ranked, kd{w, d})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].density != ranked[j].density {
			return ranked[i].density > ranked[j].density
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > maxKeywords {
		ranked = ranked[:maxKeywords]
	}
	out := make([]string, len(ranked))
	for i, k := range ranked {
		out[i] = k.word
	}
	return out
}

func keywordDensity(text string) map[string]float64 {
	clean := nonWordRe.ReplaceAllString(strings.ToLower(text), "")
	words := strings.Fields(clean)

	freq := make(map[string]int)
	for _, w := range words {
		if utf8.RuneCountInString(w) > minKeywordLen {
			freq[w]++
		}
	}

	density := make(map[string]float64, len(freq))
	if len(words) == 0 {
		return density
	}
	for w, n := range freq {
		density[w] = float64(n) / float64(len(words))
	}
	return density
}

func overusedWords(density map[string]float64) []string {
	var out []string
	for w, d := range density {
		if d > overusedShare {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

func htmlReport(readability float64, density map[string]float64, overused []string) string {
	var b strings.Builder
	b.WriteString("<div class='quality-report'>\n")
	b.WriteString("<h3>Readability</h3>\n")
	fmt.Fprintf(&b, "<p>Score: %.2f/10</p>\n", readability)

	b.WriteString("<h3>Keywords</h3>\n")
	if len(density) > 0 {
		b.WriteString("<ul>\n")
		for _, w := range Keywords(density) {
			fmt.Fprintf(&b, "<li>%s: %.2f%%</li>\n", w, density[w]*100)
		}
		b.WriteString("</ul>\n")
	} else {
		b.WriteString("<p>No keywords found</p>\n")
	}

	if len(overused) > 0 {
		b.WriteString("<h3>Overused words</h3>\n<ul>\n")
		for _, w := range overused {
			fmt.Fprintf(&b, "<li>%s</li>\n", w)
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</div>")
	return b.String()
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
