package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foxhands/generationTextSerega/types"
)

// ViewState represents the result area state machine
type ViewState string

const (
	ViewIdle    ViewState = "idle"
	ViewLoading ViewState = "loading"
	ViewError   ViewState = "error"
	ViewResult  ViewState = "result"
)

// TopicState tracks the topic selector lifecycle. It follows the
// category selection: no category means no topics, and every category
// change restarts the cycle.
type TopicState int

const (
	TopicNeedsCategory TopicState = iota
	TopicLoading
	TopicReady
	TopicFailed
)

// Field identifies the focused form control
type Field int

const (
	FieldLanguage Field = iota
	FieldCategory
	FieldTopic
	FieldCustom
	FieldSubmit
)

// Backend is the API surface the form talks to. *client.Client satisfies
// it; tests substitute a fake.
type Backend interface {
	Categories(ctx context.Context, language string) ([]string, error)
	Topics(ctx context.Context, category, language string) ([]string, error)
	Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error)
}

// DefaultLanguages lists the supported article languages in display order.
var DefaultLanguages = []string{"ru", "ua"}

// Model represents the TUI form state (thin client)
type Model struct {
	backend Backend

	// Form selections. An index of -1 means the placeholder row.
	languages   []string
	langIdx     int
	categories  []string
	catIdx      int
	topicState  TopicState
	topics      []string
	topicIdx    int
	customTopic string
	focus       Field

	// Request tokens. Each language change bumps catSeq and each
	// category change bumps topicSeq; responses carrying an older token
	// are dropped.
	catSeq   int
	topicSeq int

	// Result area
	view       ViewState
	result     *types.GenerationResult
	errMsg     string
	validation string
}

// NewModel creates a new form model talking to the given backend.
func NewModel(backend Backend) Model {
	return Model{
		backend:   backend,
		languages: DefaultLanguages,
		catIdx:    -1,
		topicIdx:  -1,
		view:      ViewIdle,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadCategories(m.backend, m.catSeq, m.language())
}

func (m Model) language() string {
	return m.languages[m.langIdx]
}

func (m Model) category() string {
	if m.catIdx < 0 || m.catIdx >= len(m.categories) {
		return ""
	}
	return m.categories[m.catIdx]
}

func (m Model) selectedTopic() string {
	if m.topicState != TopicReady || m.topicIdx < 0 || m.topicIdx >= len(m.topics) {
		return ""
	}
	return m.topics[m.topicIdx]
}
