package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/foxhands/generationTextSerega/quality"
)

// scriptedLLM returns canned outputs in order, then repeats the last one.
type scriptedLLM struct {
	outputs []string
	errs    []error
	calls   int
}

func (s *scriptedLLM) ModelName() string { return "scripted" }

func (s *scriptedLLM) Complete(_ context.Context, _, _ string) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.outputs) {
		i = len(s.outputs) - 1
	}
	if s.errs != nil && s.errs[i] != nil {
		return "", s.errs[i]
	}
	return s.outputs[i], nil
}

// longArticle builds a varied markdown article long enough to pass the
// default quality gate.
func longArticle() string {
	var b strings.Builder
	b.WriteString("# Обзор\n\n")
	for i := 0; i < 350; i++ {
		fmt.Fprintf(&b, "slv%d", i%50)
		if (i+1)%7 == 0 {
			b.WriteString(". ")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func relaxedChecker() *quality.Checker {
	return quality.NewCheckerWith(&quality.Analyzer{MinWordCount: 5}, 0)
}

func TestGenerateBuildsMetadata(t *testing.T) {
	llm := &scriptedLLM{outputs: []string{longArticle()}}
	g := New(llm)

	article, err := g.Generate(context.Background(), "Выбор первой страйкбольной винтовки", "ru", "Оружие")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	m := article.Metadata
	if m.Title != "Выбор первой страйкбольной винтовки" {
		t.Fatalf("unexpected title %q", m.Title)
	}
	if m.Language != "ru" || m.Category != "Оружие" {
		t.Fatalf("unexpected language/category: %q/%q", m.Language, m.Category)
	}
	if m.WordCount == 0 {
		t.Fatal("expected word count to be set")
	}
	if !m.ValidationPassed {
		t.Fatal("expected validation to pass")
	}
	if len(m.Keywords) == 0 {
		t.Fatal("expected keywords to be extracted")
	}
	if m.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestGenerateRetriesOnModelError(t *testing.T) {
	// Short words are ignored by the keyword statistics, so this draft
	// passes the relaxed gate.
	llm := &scriptedLLM{
		outputs: []string{"", "ок да так и был бот тут же"},
		errs:    []error{errors.New("connection refused"), nil},
	}
	g := NewWith(llm, relaxedChecker(), 3)

	article, err := g.Generate(context.Background(), "тема", "ru", "Страйкбол")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if llm.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", llm.calls)
	}
	if article.Content == "" {
		t.Fatal("expected content")
	}
}

func TestGenerateFailsAfterRetries(t *testing.T) {
	llm := &scriptedLLM{
		outputs: []string{""},
		errs:    []error{errors.New("model offline")},
	}
	g := NewWith(llm, relaxedChecker(), 2)

	_, err := g.Generate(context.Background(), "тема", "ru", "Страйкбол")
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if !strings.Contains(err.Error(), "model offline") {
		t.Fatalf("expected last error to be wrapped, got %v", err)
	}
	if llm.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", llm.calls)
	}
}

func TestGenerateRejectsUnreadableArticle(t *testing.T) {
	// One word repeated: fails the overuse gate on every attempt.
	llm := &scriptedLLM{outputs: []string{strings.Repeat("спам ", 400)}}
	g := NewWith(llm, quality.NewChecker(), 1)

	_, err := g.Generate(context.Background(), "тема", "ru", "Страйкбол")
	if err == nil {
		t.Fatal("expected quality failure")
	}
	if !strings.Contains(err.Error(), "quality check") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMockLLMProducesMarkdown(t *testing.T) {
	out, err := MockLLM{}.Complete(context.Background(), "system", "Напиши статью на тему: тест")
	if err != nil {
		t.Fatalf("mock failed: %v", err)
	}
	if !strings.HasPrefix(out, "# ") {
		t.Fatalf("expected markdown heading, got %q", out)
	}
}
