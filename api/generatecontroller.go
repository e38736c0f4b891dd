package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foxhands/generationTextSerega/types"
)

// RegisterGenerationRoutes registers article generation and download routes.
func (s *Server) RegisterGenerationRoutes(r *gin.Engine) {
	r.POST("/api/generate", s.handleGenerate)
	r.GET("/download/:filename", s.handleDownload)
}

// handleGenerate produces an article for the requested topic, saves it in
// three formats and returns content, metadata and download links.
// POST /api/generate
func (s *Server) handleGenerate(c *gin.Context) {
	var req types.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}
	if req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	if req.Language == "" {
		req.Language = "ru"
	}

	ctx := c.Request.Context()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, req)
		if err != nil {
			log.Printf("cache lookup failed: %v", err)
		} else if cached != nil {
			c.JSON(http.StatusOK, types.GenerationResult{Success: true, Article: *cached})
			return
		}
	}

	log.Printf("📥 Generating article: topic=%q language=%s category=%s", req.Topic, req.Language, req.Category)

	article, err := s.generator.Generate(ctx, req.Topic, req.Language, req.Category)
	if err != nil {
		log.Printf("❌ Generation failed for %q: %v", req.Topic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	links, err := s.store.Save(ctx, article)
	if err != nil {
		log.Printf("❌ Failed to save article %q: %v", req.Topic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	generated := types.GeneratedArticle{
		Content:  article.Content,
		Metadata: article.Metadata,
		Files:    links,
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, req, &generated); err != nil {
			log.Printf("cache store failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, types.GenerationResult{Success: true, Article: generated})
}

// handleDownload serves a previously saved article file.
// GET /download/article_20250601_120000.md
func (s *Server) handleDownload(c *gin.Context) {
	filename := c.Param("filename")

	path, err := s.store.Resolve(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.FileAttachment(path, filename)
}
