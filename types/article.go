package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// ArticleMetadata describes a generated article: what it is about and how
// the quality gate scored it.
type ArticleMetadata struct {
	Title            string    `json:"title"`
	Language         string    `json:"language"`
	Category         string    `json:"category"`
	CreatedAt        time.Time `json:"created_at"`
	WordCount        int       `json:"word_count"`
	ReadabilityScore float64   `json:"readability_score"`
	Keywords         []string  `json:"keywords"`
	ValidationPassed bool      `json:"validation_passed"`
	HTMLReport       string    `json:"html_report,omitempty"`
}

// Article is a generated article with its markdown content and metadata.
type Article struct {
	Content  string          `json:"content"`
	Metadata ArticleMetadata `json:"metadata"`
}

// FileLinks holds the download URLs for the three saved formats.
type FileLinks struct {
	TXT      string `json:"txt"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// GenerationRequest is the payload sent to POST /api/generate.
// Topic is never empty when sent; the client validates before submitting.
type GenerationRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
	Category string `json:"category"`
}

// GeneratedArticle is the article object in a successful generation
// response: content plus metadata plus the saved file links.
type GeneratedArticle struct {
	Content  string          `json:"content"`
	Metadata ArticleMetadata `json:"metadata"`
	Files    FileLinks       `json:"files"`
}

// GenerationResult is the top-level success body of POST /api/generate.
type GenerationResult struct {
	Success bool             `json:"success"`
	Article GeneratedArticle `json:"article"`
}

// ToText renders the article as a plain-text document with a metadata
// header, the format used for the .txt download.
func (a *Article) ToText() string {
	m := a.Metadata
	return fmt.Sprintf(`Title: %s
Language: %s
Category: %s
Created: %s
Words: %d
Readability: %.2f
Keywords: %s

%s`, m.Title, m.Language, m.Category, m.CreatedAt.Format(time.RFC3339),
		m.WordCount, m.ReadabilityScore, strings.Join(m.Keywords, ", "), a.Content)
}

// ToMarkdown renders the article as a markdown document with an emphasized
// metadata block, the format used for the .md download.
func (a *Article) ToMarkdown() string {
	m := a.Metadata
	return fmt.Sprintf(`# %s

*Language:* %s
*Category:* %s
*Created:* %s
*Words:* %d
*Readability:* %.2f
*Keywords:* %s

%s`, m.Title, m.Language, m.Category, m.CreatedAt.Format(time.RFC3339),
		m.WordCount, m.ReadabilityScore, strings.Join(m.Keywords, ", "), a.Content)
}

// RequestKey returns a stable hash of the request parameters, used as the
// result-cache key.
func (r GenerationRequest) RequestKey() string {
	combined := r.Topic + "|" + r.Language + "|" + r.Category
	h := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(h[:])
}
