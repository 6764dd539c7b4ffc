package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminCredentials returns the configured login. In debug mode unset
// values fall back to development defaults; otherwise login is disabled.
func (s *Server) adminCredentials() (user, pass string, ok bool) {
	user, pass = s.cfg.AdminUsername, s.cfg.AdminPassword
	if gin.Mode() == gin.DebugMode {
		if user == "" {
			user = "admin"
			s.logger.Warn("using default admin username; set PORTFOLIO_ADMIN_USERNAME")
		}
		if pass == "" {
			pass = "admin123"
			s.logger.Warn("using default admin password; set PORTFOLIO_ADMIN_PASSWORD")
		}
	}
	return user, pass, user != "" && pass != ""
}

// adminAuth requires the session cookie issued at login.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		who := s.hasher.Hash(c.ClientIP())
		user, pass, ok := s.adminCredentials()
		if !ok {
			s.logger.Warn("admin login attempted but no credentials are configured", "client", who)
			c.HTML(http.StatusServiceUnavailable, "admin-login.html", gin.H{
				"error": "Admin access is not configured",
			})
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(c.PostForm("username")), []byte(user)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(c.PostForm("password")), []byte(pass)) == 1
		if !userOK || !passOK {
			s.logger.Warn("failed admin login", "client", who)
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		s.logger.Info("admin login", "client", who)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			s.logger.Error("loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		s.logger.Info("admin stats exported", "client", s.hasher.Hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.analytics.Cleanup(c.Request.Context(), s.cfg.Retention())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "deleted": n})
	})
}
