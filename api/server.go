package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/foxhands/generationTextSerega/catalog"
	"github.com/foxhands/generationTextSerega/storage"
	"github.com/foxhands/generationTextSerega/types"
)

// ArticleGenerator produces a validated article for a topic.
type ArticleGenerator interface {
	Generate(ctx context.Context, topic, language, category string) (*types.Article, error)
}

// Server handles HTTP API requests for article generation
type Server struct {
	catalog   *catalog.Catalog
	generator ArticleGenerator
	store     *storage.Store
	cache     *storage.ResultCache
	trending  *catalog.Trending
}

// NewServer creates a new API server instance. Cache and trending are
// optional and attached via WithCache/WithTrending.
func NewServer(cat *catalog.Catalog, gen ArticleGenerator, store *storage.Store) *Server {
	return &Server{
		catalog:   cat,
		generator: gen,
		store:     store,
	}
}

// WithCache enables the Redis result cache.
func (s *Server) WithCache(cache *storage.ResultCache) *Server {
	s.cache = cache
	return s
}

// WithTrending enables RSS-sourced topic suggestions.
func (s *Server) WithTrending(t *catalog.Trending) *Server {
	s.trending = t
	return s
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.RegisterIndexRoutes(r)
	s.RegisterCatalogRoutes(r)
	s.RegisterGenerationRoutes(r)
	RegisterHealthRoutes(r)
	return r
}

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
}
