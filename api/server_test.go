package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foxhands/generationTextSerega/catalog"
	"github.com/foxhands/generationTextSerega/storage"
	"github.com/foxhands/generationTextSerega/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeGenerator returns a canned article or error and records calls.
type fakeGenerator struct {
	article *types.Article
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(_ context.Context, topic, language, category string) (*types.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	a := *f.article
	a.Metadata.Title = topic
	a.Metadata.Language = language
	a.Metadata.Category = category
	return &a, nil
}

func testServer(t *testing.T, gen ArticleGenerator) *Server {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return NewServer(catalog.Default(), gen, store)
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestCategoriesForLanguage(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	w := doRequest(s, http.MethodGet, "/api/categories?language=ru", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}

	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Categories) == 0 {
		t.Fatal("expected ru categories")
	}
	if body.Categories[0] != "Страйкбол" {
		t.Fatalf("expected catalog order preserved, got %v", body.Categories)
	}
}

func TestCategoriesUnknownLanguageIsEmpty(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	w := doRequest(s, http.MethodGet, "/api/categories?language=en", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"categories":[]`) {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestTopicsValidation(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	if w := doRequest(s, http.MethodGet, "/api/topics?language=ru", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("missing category: expected 400, got %d", w.Code)
	}
	if w := doRequest(s, http.MethodGet, "/api/topics?category=%D0%9D%D0%B5%D1%82&language=ru", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown category: expected 404, got %d", w.Code)
	}
}

func TestTopicsForCategory(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	w := doRequest(s, http.MethodGet, "/api/topics?category=%D0%A1%D1%82%D1%80%D0%B0%D0%B9%D0%BA%D0%B1%D0%BE%D0%BB&language=ru", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Topics) == 0 {
		t.Fatal("expected topics")
	}
}

func TestGenerateValidatesRequest(t *testing.T) {
	gen := &fakeGenerator{}
	s := testServer(t, gen)

	cases := []struct {
		name string
		body string
	}{
		{"empty topic", `{"topic":"  ","language":"ru","category":"Страйкбол"}`},
		{"missing category", `{"topic":"AI","language":"ru"}`},
		{"bad json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(s, http.MethodPost, "/api/generate", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
	if gen.calls != 0 {
		t.Fatalf("generator must not be called on invalid input, got %d calls", gen.calls)
	}
}

func TestGenerateReturnsArticleWithLinks(t *testing.T) {
	gen := &fakeGenerator{article: &types.Article{
		Content: "# AI\n\nтекст",
		Metadata: types.ArticleMetadata{
			CreatedAt:        time.Now(),
			WordCount:        2,
			ReadabilityScore: 8,
			ValidationPassed: true,
		},
	}}
	s := testServer(t, gen)

	w := doRequest(s, http.MethodPost, "/api/generate", `{"topic":"AI","language":"ru","category":"Технологии"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}

	var result types.GenerationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success")
	}
	if result.Article.Metadata.Title != "AI" {
		t.Fatalf("unexpected title %q", result.Article.Metadata.Title)
	}
	for _, link := range []string{result.Article.Files.TXT, result.Article.Files.Markdown, result.Article.Files.HTML} {
		if !strings.HasPrefix(link, storage.DownloadPrefix) {
			t.Fatalf("unexpected link %q", link)
		}
	}

	// Saved files must be downloadable through the same server.
	filename := strings.TrimPrefix(result.Article.Files.Markdown, storage.DownloadPrefix)
	dl := doRequest(s, http.MethodGet, storage.DownloadPrefix+filename, "")
	if dl.Code != http.StatusOK {
		t.Fatalf("download failed: %d", dl.Code)
	}
}

func TestGenerateSurfacesGeneratorError(t *testing.T) {
	s := testServer(t, &fakeGenerator{err: errors.New("quota exceeded")})

	w := doRequest(s, http.MethodPost, "/api/generate", `{"topic":"AI","language":"ru","category":"Технологии"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Error != "quota exceeded" {
		t.Fatalf("expected generator error in body, got %q", body.Error)
	}
}

func TestDownloadRejectsUnknownFile(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	if w := doRequest(s, http.MethodGet, "/download/missing.txt", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doRequest(s, http.MethodGet, "/download/..%2Fsecret.txt", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for traversal, got %d", w.Code)
	}
}

func TestIndexSeedsAllLanguagesAndFilters(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	w := doRequest(s, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}

	body := w.Body.String()
	// Seed tuples for every language are rendered into the markup, each
	// tagged with its owning language.
	for _, want := range []string{
		`data-language="ru"`,
		`data-language="ua"`,
		"Тактическое снаряжение",
		"Тактичне спорядження",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("index page missing %q", want)
		}
	}
	// The page filters visible categories down to the selected language,
	// on load and on every language change.
	if !strings.Contains(body, "filterCategories()") {
		t.Fatal("index page missing the category language filter")
	}
	if !strings.Contains(body, `languageSelect.addEventListener('change'`) {
		t.Fatal("index page must refilter on language change")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, &fakeGenerator{})

	w := doRequest(s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}
