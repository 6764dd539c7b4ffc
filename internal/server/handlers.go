package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neozi12/portfolio/internal/catalog"
	"github.com/neozi12/portfolio/internal/site"
)

// index handles GET /
func (s *Server) index(c *gin.Context) {
	page, err := s.page()
	if err != nil {
		s.logger.Error("rendering page", "error", err)
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	s.metrics.pageViews.WithLabelValues("index").Inc()
	c.HTML(http.StatusOK, site.IndexTemplate, page)
}

// privacy handles GET /privacy
func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":         "Privacy Policy",
		"retentionDays": s.cfg.RetentionDays,
	})
}

// health handles GET /api/health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"projects": s.catalogs.Current().Len(),
	})
}

// listProjects handles GET /api/projects
func (s *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": s.catalogs.Current().Projects()})
}

// getProject handles GET /api/projects/:key
func (s *Server) getProject(c *gin.Context) {
	p, err := s.catalogs.Current().Get(c.Param("key"))
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// outbound handles GET /go/:key/:link, counting the click before
// redirecting to the project's repository or demo.
func (s *Server) outbound(c *gin.Context) {
	key, link := c.Param("key"), c.Param("link")

	p, err := s.catalogs.Current().Get(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	target := p.LinkURL(link)
	if target == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}

	if c.GetHeader("DNT") != "1" {
		if err := s.analytics.RecordClick(c.Request.Context(), p.Key, link); err != nil {
			s.logger.Error("recording link click", "project", p.Key, "link", link, "error", err)
		}
	}
	s.metrics.linkClicks.WithLabelValues(p.Key, link).Inc()
	c.Redirect(http.StatusFound, target)
}
