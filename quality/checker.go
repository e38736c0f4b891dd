package quality

import "strings"

// TargetReadability is the minimum readability score an article must
// reach to pass validation.
const TargetReadability = 5.0

// Metrics is the outcome of a comprehensive quality check.
type Metrics struct {
	Readability    float64
	KeywordDensity map[string]float64
	OverusedWords  []string
	Errors         []string
	HTMLReport     string
}

// Checker gates generated articles on readability and word reuse.
type Checker struct {
	TargetReadability float64
	analyzer          *Analyzer
}

// NewChecker returns a checker with the default thresholds.
func NewChecker() *Checker {
	return &Checker{
		TargetReadability: TargetReadability,
		analyzer:          NewAnalyzer(),
	}
}

// NewCheckerWith returns a checker using the given analyzer and
// readability threshold. Used to relax the gate in tests and previews.
func NewCheckerWith(analyzer *Analyzer, targetReadability float64) *Checker {
	return &Checker{TargetReadability: targetReadability, analyzer: analyzer}
}

// Check analyzes the text and reports whether it passes the gate. The
// returned metrics are populated on both outcomes so callers can report
// why a text failed.
func (c *Checker) Check(text string) (bool, Metrics) {
	res := c.analyzer.Analyze(text, false)

	m := Metrics{
		Readability:    res.ReadabilityScore,
		KeywordDensity: res.KeywordDensity,
		OverusedWords:  res.OverusedWords,
		HTMLReport:     res.HTMLReport,
	}

	if len(strings.Fields(text)) < c.analyzer.MinWordCount {
		m.Errors = append(m.Errors, "article is too short")
		return false, m
	}
	if res.ReadabilityScore < c.TargetReadability {
		m.Errors = append(m.Errors, "readability below target")
		return false, m
	}
	if len(res.OverusedWords) > 0 {
		m.Errors = append(m.Errors, "overused words detected")
		return false, m
	}
	return true, m
}
