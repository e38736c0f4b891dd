package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the category and topic lookup routes.
func (s *Server) RegisterCatalogRoutes(r *gin.Engine) {
	r.GET("/api/categories", s.handleGetCategories)
	r.GET("/api/topics", s.handleGetTopics)
}

// handleGetCategories returns the category names for a language.
// GET /api/categories?language=ru
func (s *Server) handleGetCategories(c *gin.Context) {
	language := c.DefaultQuery("language", "ru")
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.Categories(language)})
}

// handleGetTopics returns the suggested topics for a category. Trending
// suggestions from RSS are appended when configured; a feed failure only
// degrades the list.
// GET /api/topics?category=Страйкбол&language=ru
func (s *Server) handleGetTopics(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	language := c.DefaultQuery("language", "ru")

	topics, ok := s.catalog.Topics(category, language)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}

	if s.trending != nil {
		extra, err := s.trending.TopicsFor(c.Request.Context(), category)
		if err != nil {
			log.Printf("trending topics unavailable for %q: %v", category, err)
		} else {
			topics = append(topics, extra...)
		}
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
