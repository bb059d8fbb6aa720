// admin.go - admin dashboard over the project load log
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// initAdmin generates the session token and the salt used to hash client
// IPs in admin logs.
func (a *app) initAdmin() error {
	token, err := generateAdminToken()
	if err != nil {
		return err
	}
	salt, err := generateAdminToken()
	if err != nil {
		return err
	}
	a.adminToken = token
	a.hashingSalt = salt

	a.logger.Info("admin access available", "path", "/admin/login")
	if gin.Mode() == gin.DebugMode {
		a.logger.Debug("admin token (dev only)", "token", a.adminToken)
	}
	return nil
}

func generateAdminToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating admin token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Hash IP address so admin logs never carry a raw address
func (a *app) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *app) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// cleanupOldLoadEvents enforces the retention window on the load log.
func (a *app) cleanupOldLoadEvents(ctx context.Context) {
	removed, err := a.events.Prune(ctx, a.cfg.Admin.EventRetention)
	if err != nil {
		a.logger.Error("cleaning up old load events", "error", err)
		return
	}
	if removed > 0 {
		a.logger.Info("removed expired load events", "count", removed, "retention", a.cfg.Admin.EventRetention)
	}
}

func (a *app) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Admin.Password)) == 1
		if userOK && passOK {
			c.SetCookie(adminCookie, a.adminToken, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
			a.logger.Info("admin login successful", "client", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		a.logger.Warn("failed admin login attempt", "client", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		a.logger.Info("admin logout", "client", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.events.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Project Loads",
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.events.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/events/prune", func(c *gin.Context) {
		removed, err := a.events.Prune(c.Request.Context(), a.cfg.Admin.EventRetention)
		if err != nil {
			a.logger.Error("pruning load events", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prune load events"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	// Statistics export for backups or analysis
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.events.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=load-stats.json")
		a.logger.Info("admin stats exported", "client", a.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
