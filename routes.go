package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/viewport"
)

type app struct {
	cfg      config.Config
	site     profile.Store
	loader   *projects.Loader
	renderer *render.Renderer
	events   *store.Store
	viewport viewport.Config
	logger   *slog.Logger

	adminToken  string
	hashingSalt string
}

func (a *app) accountURL(handle string) string {
	p := a.site.Profile()
	p.GitHub = handle
	return p.AccountURL(a.cfg.GitHub.WebURL)
}

func (a *app) setupRoutes(r *gin.Engine) {
	r.GET("/", a.handleIndex)

	// HTMX endpoint - returns the status note and project grid together
	r.GET("/projects", a.handleProjects)

	r.POST("/theme", a.handleThemeToggle)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Home page: static data plus the curated projects, with the live list
// requested by the page once it loads.
func (a *app) handleIndex(c *gin.Context) {
	prefs := theme.NewCookieStore(c.Writer, c.Request)
	current := theme.Initial(prefs, theme.PrefersLight(c.Request))
	c.Header("Accept-CH", theme.HintHeader)
	c.Header("Vary", theme.HintHeader)

	p := a.site.Profile()
	account := p.AccountURL(a.cfg.GitHub.WebURL)
	_, accountLabel, _ := strings.Cut(account, "://")
	strengths, errStrengths := a.renderer.Strengths(p.Strengths)
	skills, errSkills := a.renderer.SkillGroups(a.site.SkillGroups())
	timeline, errTimeline := a.renderer.Timeline(a.site.Timeline())
	region, errRegion := a.renderer.Region(projects.LoadingStatus(p.GitHub), a.loader.Fallback())
	if err := errors.Join(errStrengths, errSkills, errTimeline, errRegion); err != nil {
		a.logger.ErrorContext(c.Request.Context(), "rendering home page", "error", err)
		c.String(http.StatusInternalServerError, "Something went wrong rendering this page.")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":           p.Title(),
		"profile":         p,
		"accountURL":      account,
		"accountLabel":    accountLabel,
		"strengths":       strengths,
		"skills":          skills,
		"timeline":        timeline,
		"projectsRegion":  region,
		"theme":           string(current),
		"scrollThreshold": a.viewport.ScrollThreshold,
		"revealRatio":     a.viewport.RevealRatio,
		"revealedClass":   viewport.RevealedClass,
		"scrollTopClass":  viewport.ScrollTopVisibleClass,
		"year":            time.Now().Year(),
	})
}

func (a *app) handleProjects(c *gin.Context) {
	ctx := c.Request.Context()
	handle := a.site.Profile().GitHub

	sink := render.NewRegionSink(a.renderer)
	res := a.loader.Load(ctx, handle, sink)
	a.recordLoad(ctx, res)

	if sink.Err != nil {
		a.logger.ErrorContext(ctx, "rendering projects", "error", sink.Err)
		c.String(http.StatusInternalServerError, "Projects are unavailable right now.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(sink.HTML))
}

// recordLoad writes the outcome to the event log. Failures here never
// reach the visitor.
func (a *app) recordLoad(ctx context.Context, res projects.Result) {
	if a.events == nil {
		return
	}
	e := store.LoadEvent{
		Handle:       res.Status.Handle,
		Source:       string(res.Status.Source),
		ProjectCount: len(res.Projects),
		Status:       res.Status.Message,
	}
	if res.Err != nil {
		e.Error = res.Err.Error()
	}
	if err := a.events.RecordLoad(context.WithoutCancel(ctx), e); err != nil {
		a.logger.WarnContext(ctx, "recording load event", "error", err)
	}
}

// The page posts its current theme so the toggle flips what the visitor
// sees even when no preference has been stored yet.
func (a *app) handleThemeToggle(c *gin.Context) {
	prefs := theme.NewCookieStore(c.Writer, c.Request)
	current, ok := theme.Parse(c.PostForm("current"))
	if !ok {
		current = theme.Initial(prefs, theme.PrefersLight(c.Request))
	}
	next := theme.Toggle(prefs, current)

	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, gin.H{"theme": next})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
