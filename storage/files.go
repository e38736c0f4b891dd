package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/foxhands/generationTextSerega/types"
)

// DownloadPrefix is the URL prefix the server exposes saved files under.
const DownloadPrefix = "/download/"

// Store writes generated articles to disk in three formats and hands out
// their download links. An optional archive mirrors every saved file.
type Store struct {
	dir     string
	md      goldmark.Markdown
	archive *Archive
}

// NewStore creates the articles directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create articles dir: %w", err)
	}
	return &Store{dir: dir, md: goldmark.New()}, nil
}

// WithArchive attaches an optional S3 mirror. A nil archive disables
// mirroring.
func (s *Store) WithArchive(a *Archive) *Store {
	s.archive = a
	return s
}

// Save writes the article as article_<timestamp>.{txt,md,html} and
// returns the three download links. Either all files are written or an
// error is returned.
func (s *Store) Save(ctx context.Context, article *types.Article) (types.FileLinks, error) {
	base := s.uniqueBase(fmt.Sprintf("article_%s", time.Now().Format("20060102_150405")))

	html, err := s.renderHTML(article)
	if err != nil {
		return types.FileLinks{}, err
	}

	files := []struct {
		name        string
		content     string
		contentType string
	}{
		{base + ".txt", article.ToText(), "text/plain; charset=utf-8"},
		{base + ".md", article.ToMarkdown(), "text/markdown; charset=utf-8"},
		{base + ".html", html, "text/html; charset=utf-8"},
	}

	for _, f := range files {
		path := filepath.Join(s.dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return types.FileLinks{}, fmt.Errorf("failed to save %s: %w", f.name, err)
		}
		if s.archive != nil {
			if err := s.archive.Store(ctx, f.name, []byte(f.content), f.contentType); err != nil {
				// The local copy is authoritative; a failed mirror is
				// logged, not fatal.
				log.Printf("archive upload failed for %s: %v", f.name, err)
			}
		}
	}

	return types.FileLinks{
		TXT:      DownloadPrefix + base + ".txt",
		Markdown: DownloadPrefix + base + ".md",
		HTML:     DownloadPrefix + base + ".html",
	}, nil
}

// uniqueBase disambiguates the timestamped name when several articles
// are saved within the same second, as batch runs do.
func (s *Store) uniqueBase(base string) string {
	candidate := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(s.dir, candidate+".txt")); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

// Resolve maps a download filename to its on-disk path. Names carrying
// path separators or pointing at missing files are rejected.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}
	return path, nil
}

// renderHTML converts the article's markdown rendering into a minimal
// standalone HTML page, appending the quality report when present.
func (s *Store) renderHTML(article *types.Article) (string, error) {
	var body bytes.Buffer
	if err := s.md.Convert([]byte(article.ToMarkdown()), &body); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", article.Metadata.Title)
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	if article.Metadata.HTMLReport != "" {
		page.WriteString("\n<hr>\n")
		page.WriteString(article.Metadata.HTMLReport)
	}
	page.WriteString("\n</body>\n</html>\n")
	return page.String(), nil
}
