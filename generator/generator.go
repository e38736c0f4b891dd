package generator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/foxhands/generationTextSerega/quality"
	"github.com/foxhands/generationTextSerega/types"
)

// DefaultMaxRetries bounds the generate-and-validate loop.
const DefaultMaxRetries = 3

// Generator produces quality-gated articles from an LLM.
type Generator struct {
	llm        LLMClient
	checker    *quality.Checker
	maxRetries int
}

// New returns a generator with the default quality gate and retry count.
func New(llm LLMClient) *Generator {
	return &Generator{
		llm:        llm,
		checker:    quality.NewChecker(),
		maxRetries: DefaultMaxRetries,
	}
}

// NewWith returns a generator with an explicit checker and retry count.
func NewWith(llm LLMClient, checker *quality.Checker, maxRetries int) *Generator {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Generator{llm: llm, checker: checker, maxRetries: maxRetries}
}

// Generate asks the model for an article on topic and validates it. The
// model call is retried with exponential backoff on transport errors and
// on quality-gate failures; the last error is returned when all attempts
// are exhausted.
func (g *Generator) Generate(ctx context.Context, topic, language, category string) (*types.Article, error) {
	system := systemPrompt(language)
	user := userPrompt(language, topic)

	var lastErr error
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			log.Printf("generation attempt %d/%d for %q in %s", attempt+1, g.maxRetries, topic, wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		content, err := g.llm.Complete(ctx, system, user)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(content) == "" {
			lastErr = fmt.Errorf("model %s returned empty content", g.llm.ModelName())
			continue
		}

		ok, metrics := g.checker.Check(content)
		if !ok {
			lastErr = fmt.Errorf("article failed quality check: %s", strings.Join(metrics.Errors, "; "))
			log.Printf("quality gate rejected article for %q: %v", topic, metrics.Errors)
			continue
		}

		return &types.Article{
			Content: content,
			Metadata: types.ArticleMetadata{
				Title:            topic,
				Language:         language,
				Category:         category,
				CreatedAt:        time.Now(),
				WordCount:        len(strings.Fields(content)),
				ReadabilityScore: metrics.Readability,
				Keywords:         quality.Keywords(metrics.KeywordDensity),
				ValidationPassed: true,
				HTMLReport:       metrics.HTMLReport,
			},
		}, nil
	}

	return nil, fmt.Errorf("failed to generate article after %d attempts: %w", g.maxRetries, lastErr)
}
