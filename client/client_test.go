package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foxhands/generationTextSerega/types"
)

func TestCategoriesSendsLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("language"); got != "ua" {
			t.Errorf("expected language=ua, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"categories": []string{"Страйкбол", "Зброя"}})
	}))
	defer srv.Close()

	got, err := New(srv.URL).Categories(context.Background(), "ua")
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(got) != 2 || got[0] != "Страйкбол" {
		t.Fatalf("unexpected categories %v", got)
	}
}

func TestTopicsSendsCategoryAndLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("category") != "Технологии" || q.Get("language") != "ru" {
			t.Errorf("unexpected query %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{"topics": []string{"AI", "5G"}})
	}))
	defer srv.Close()

	got, err := New(srv.URL).Topics(context.Background(), "Технологии", "ru")
	if err != nil {
		t.Fatalf("Topics failed: %v", err)
	}
	if len(got) != 2 || got[1] != "5G" {
		t.Fatalf("unexpected topics %v", got)
	}
}

func TestTopicsRejectsNonArrayBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"topics": "not-an-array"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Topics(context.Background(), "Технологии", "ru")
	if !errors.Is(err, ErrMalformedTopics) {
		t.Fatalf("expected ErrMalformedTopics, got %v", err)
	}
}

func TestGeneratePostsRequestBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req types.GenerationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Topic != "AI" || req.Language != "ru" || req.Category != "Технологии" {
			t.Errorf("unexpected request %+v", req)
		}
		json.NewEncoder(w).Encode(types.GenerationResult{
			Success: true,
			Article: types.GeneratedArticle{Content: "# AI"},
		})
	}))
	defer srv.Close()

	result, err := New(srv.URL).Generate(context.Background(), types.GenerationRequest{
		Topic: "AI", Language: "ru", Category: "Технологии",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !result.Success || result.Article.Content != "# AI" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestGenerateSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), types.GenerationRequest{Topic: "AI"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "quota exceeded" {
		t.Fatalf("expected server message to be surfaced, got %q", err.Error())
	}
}

func TestGenerateFallsBackToStatusLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), types.GenerationRequest{Topic: "AI"})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New("")
	if c.baseURL != "http://localhost:8080" {
		t.Fatalf("unexpected default %q", c.baseURL)
	}
}
