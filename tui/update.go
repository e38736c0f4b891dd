package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foxhands/generationTextSerega/types"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case CategoriesLoadedMsg:
		return m.handleCategoriesLoaded(msg)
	case TopicsLoadedMsg:
		return m.handleTopicsLoaded(msg)
	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % (FieldSubmit + 1)
		return m, nil
	case "shift+tab", "up":
		if m.focus == FieldLanguage {
			m.focus = FieldSubmit
		} else {
			m.focus--
		}
		return m, nil
	case "left":
		return m.changeSelection(-1)
	case "right":
		return m.changeSelection(1)
	case "enter":
		return m.submit()
	case "backspace":
		if m.focus == FieldCustom && m.customTopic != "" {
			runes := []rune(m.customTopic)
			m.customTopic = string(runes[:len(runes)-1])
		}
		return m, nil
	}

	if m.focus == FieldCustom && msg.Type == tea.KeyRunes {
		m.customTopic += string(msg.Runes)
		m.validation = ""
	}
	return m, nil
}

// changeSelection moves the focused selector one step and triggers the
// cascade that follows from it.
func (m Model) changeSelection(delta int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case FieldLanguage:
		next := (m.langIdx + delta + len(m.languages)) % len(m.languages)
		if next == m.langIdx {
			return m, nil
		}
		m.langIdx = next
		return m.onLanguageChange()
	case FieldCategory:
		next := clamp(m.catIdx+delta, -1, len(m.categories)-1)
		if next == m.catIdx {
			return m, nil
		}
		m.catIdx = next
		return m.onCategoryChange()
	case FieldTopic:
		if m.topicState != TopicReady {
			return m, nil
		}
		m.topicIdx = clamp(m.topicIdx+delta, -1, len(m.topics)-1)
		return m, nil
	}
	return m, nil
}

// onLanguageChange reloads the category list and resets everything
// downstream of it. The bumped token invalidates responses still in
// flight for the previous language.
func (m Model) onLanguageChange() (tea.Model, tea.Cmd) {
	m.catSeq++
	m.topicSeq++
	m.categories = nil
	m.catIdx = -1
	m.resetTopics(TopicNeedsCategory)
	m.validation = ""
	return m, loadCategories(m.backend, m.catSeq, m.language())
}

// onCategoryChange loads topics for the new category. Moving back to the
// placeholder only resets the topic field; no request is made.
func (m Model) onCategoryChange() (tea.Model, tea.Cmd) {
	m.topicSeq++
	m.validation = ""
	category := m.category()
	if category == "" {
		m.resetTopics(TopicNeedsCategory)
		return m, nil
	}
	m.resetTopics(TopicLoading)
	return m, loadTopics(m.backend, m.topicSeq, category, m.language())
}

func (m *Model) resetTopics(state TopicState) {
	m.topicState = state
	m.topics = nil
	m.topicIdx = -1
}

// submit validates the form and fires the generation request. Validation
// failures surface inline and cause no request and no view change.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.view == ViewLoading {
		return m, nil
	}

	category := m.category()
	if category == "" {
		m.validation = TextCategoryRequired
		return m, nil
	}

	topic := strings.TrimSpace(m.customTopic)
	if topic == "" {
		topic = m.selectedTopic()
	}
	if topic == "" {
		m.validation = TextTopicRequired
		return m, nil
	}

	m.validation = ""
	m.errMsg = ""
	m.result = nil
	m.view = ViewLoading
	return m, generate(m.backend, types.GenerationRequest{
		Topic:    topic,
		Language: m.language(),
		Category: category,
	})
}

// handleCategoriesLoaded installs the category list, dropping responses
// whose token no longer matches the current language selection.
func (m Model) handleCategoriesLoaded(msg CategoriesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.catSeq {
		return m, nil
	}
	if msg.Err != nil {
		m.view = ViewError
		m.errMsg = TextCategoriesFailed
		return m, nil
	}
	m.categories = msg.Categories
	m.catIdx = -1
	m.resetTopics(TopicNeedsCategory)
	if m.view == ViewError && m.errMsg == TextCategoriesFailed {
		m.view = ViewIdle
		m.errMsg = ""
	}
	return m, nil
}

// handleTopicsLoaded replaces the topic list for the current category.
// Stale responses are dropped; failures keep the form usable through the
// custom topic field.
func (m Model) handleTopicsLoaded(msg TopicsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.topicSeq {
		return m, nil
	}
	if msg.Err != nil {
		m.resetTopics(TopicFailed)
		m.view = ViewError
		m.errMsg = TextTopicsLoadError
		return m, nil
	}
	m.topicState = TopicReady
	m.topics = msg.Topics
	m.topicIdx = -1
	if m.view == ViewError && m.errMsg == TextTopicsLoadError {
		m.view = ViewIdle
		m.errMsg = ""
	}
	return m, nil
}

// handleGenerationDone moves the result area to its terminal state for
// this request.
func (m Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.view = ViewError
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.view = ViewResult
	m.result = msg.Result
	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
