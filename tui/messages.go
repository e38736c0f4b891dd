package tui

import "github.com/foxhands/generationTextSerega/types"

// Messages for the tea program

// CategoriesLoadedMsg is sent when the category list for a language
// arrives. Seq ties the response to the language selection that
// requested it.
type CategoriesLoadedMsg struct {
	Seq        int
	Language   string
	Categories []string
	Err        error
}

// TopicsLoadedMsg is sent when the topic list for a category arrives.
type TopicsLoadedMsg struct {
	Seq      int
	Category string
	Topics   []string
	Err      error
}

// GenerationDoneMsg is sent when the generation request completes.
type GenerationDoneMsg struct {
	Result *types.GenerationResult
	Err    error
}
