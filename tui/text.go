package tui

// UI Text Constants
const (
	// Form labels
	TextTitle         = "📝 Article Generator"
	TextLanguageLabel = "Language"
	TextCategoryLabel = "Category"
	TextTopicLabel    = "Topic"
	TextCustomLabel   = "Custom topic"
	TextSubmitLabel   = "[ Generate ]"

	// Placeholders
	TextChooseCategory      = "choose a category"
	TextSelectCategoryFirst = "select a category first"
	TextTopicsLoading       = "loading topics..."
	TextTopicsFailed        = "failed to load topics, enter your own"
	TextChooseTopic         = "choose a topic or enter your own"

	// Validation
	TextCategoryRequired = "choose a category before generating"
	TextTopicRequired    = "pick a topic or enter your own"

	// Panels
	TextGenerating       = "⏳ Generating article, this can take a minute..."
	TextCategoriesFailed = "failed to load categories"
	TextTopicsLoadError  = "failed to load topics"

	// Footer
	TextFooter = "tab/↓ ↑ move | ←/→ change | enter generate | esc quit"
)
