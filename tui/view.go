package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(FieldLanguage, TextLanguageLabel, ValueStyle.Render(m.language())))
	b.WriteString(m.renderField(FieldCategory, TextCategoryLabel, m.categoryText()))
	b.WriteString(m.renderField(FieldTopic, TextTopicLabel, m.topicText()))
	b.WriteString(m.renderField(FieldCustom, TextCustomLabel, m.customText()))

	b.WriteString("\n")
	if m.focus == FieldSubmit {
		b.WriteString(FocusStyle.Render(TextSubmitLabel))
	} else {
		b.WriteString(LabelStyle.Render(TextSubmitLabel))
	}
	b.WriteString("\n")

	if m.validation != "" {
		b.WriteString(ErrorStyle.Render("⚠ " + m.validation))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.view {
	case ViewLoading:
		b.WriteString(ValueStyle.Render(TextGenerating))
		b.WriteString("\n")
	case ViewError:
		b.WriteString(ErrorStyle.Render("❌ " + m.errMsg))
		b.WriteString("\n")
	case ViewResult:
		b.WriteString(BoxStyle.Render(m.formatResult()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(TextFooter))
	b.WriteString("\n")

	return b.String()
}

// renderField draws one labeled form row, highlighting the focused one.
func (m Model) renderField(f Field, label, value string) string {
	rendered := LabelStyle.Render(label)
	if m.focus == f {
		rendered = FocusStyle.Render(label)
	}
	return fmt.Sprintf("%s %s\n", rendered, value)
}

func (m Model) categoryText() string {
	if len(m.categories) == 0 {
		return PlaceholderStyle.Render(TextChooseCategory)
	}
	if m.catIdx < 0 {
		return PlaceholderStyle.Render(fmt.Sprintf("%s (%d)", TextChooseCategory, len(m.categories)))
	}
	return ValueStyle.Render(m.categories[m.catIdx])
}

// topicText mirrors the topic field lifecycle: it always tells the user
// why the list is empty rather than showing a blank selector.
func (m Model) topicText() string {
	switch m.topicState {
	case TopicNeedsCategory:
		return PlaceholderStyle.Render(TextSelectCategoryFirst)
	case TopicLoading:
		return PlaceholderStyle.Render(TextTopicsLoading)
	case TopicFailed:
		return ErrorStyle.Render(TextTopicsFailed)
	}
	if m.topicIdx < 0 {
		return PlaceholderStyle.Render(fmt.Sprintf("%s (%d)", TextChooseTopic, len(m.topics)))
	}
	return ValueStyle.Render(m.topics[m.topicIdx])
}

func (m Model) customText() string {
	if m.customTopic == "" {
		return PlaceholderStyle.Render("...")
	}
	return ValueStyle.Render(m.customTopic)
}

// formatResult renders the generated article panel
func (m Model) formatResult() string {
	article := m.result.Article
	var b strings.Builder

	b.WriteString(FocusStyle.Render(article.Metadata.Title))
	b.WriteString("\n\n")

	b.WriteString(article.Content)
	b.WriteString("\n\n")

	b.WriteString(InfoStyle.Render(fmt.Sprintf(
		"Readability: %.1f | Words: %d | Keywords: %s",
		article.Metadata.ReadabilityScore,
		article.Metadata.WordCount,
		strings.Join(article.Metadata.Keywords, ", "),
	)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("TXT: %s\n", article.Files.TXT))
	b.WriteString(fmt.Sprintf("Markdown: %s\n", article.Files.Markdown))
	b.WriteString(fmt.Sprintf("HTML: %s", article.Files.HTML))

	return b.String()
}
