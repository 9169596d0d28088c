package handlers

import (
	"net/http"

	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SEOHandler serves the crawler-facing documents
type SEOHandler struct {
	seo    *services.SEOService
	logger *logrus.Logger
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(seo *services.SEOService, logger *logrus.Logger) *SEOHandler {
	return &SEOHandler{seo: seo, logger: logger}
}

// RobotsTxt serves the robots directive document
// GET /robots.txt
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	body := h.seo.RobotsTxt()

	// Shared caches may serve up to 60s stale while refreshing in the
	// background for up to 300s.
	c.Header("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// Sitemap serves the sitemap document
// GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.seo.SitemapXML()
	if err != nil {
		h.logger.WithError(err).Error("sitemap assembly failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
		return
	}

	// Sitemap content tracks inventory; force revalidation every time.
	c.Header("Cache-Control", "public, max-age=0, must-revalidate")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
