package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foxhands/generationTextSerega/types"
)

// loadCategories creates a command to fetch the categories for a language
func loadCategories(backend Backend, seq int, language string) tea.Cmd {
	return func() tea.Msg {
		categories, err := backend.Categories(context.Background(), language)
		return CategoriesLoadedMsg{
			Seq:        seq,
			Language:   language,
			Categories: categories,
			Err:        err,
		}
	}
}

// loadTopics creates a command to fetch the topics for a category
func loadTopics(backend Backend, seq int, category, language string) tea.Cmd {
	return func() tea.Msg {
		topics, err := backend.Topics(context.Background(), category, language)
		return TopicsLoadedMsg{
			Seq:      seq,
			Category: category,
			Topics:   topics,
			Err:      err,
		}
	}
}

// generate creates a command to submit the generation request
func generate(backend Backend, req types.GenerationRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := backend.Generate(context.Background(), req)
		return GenerationDoneMsg{Result: result, Err: err}
	}
}
