package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"shipdesk/internal/backend"
	"shipdesk/internal/config"
	"shipdesk/internal/database"
	"shipdesk/internal/forms"
	"shipdesk/internal/handlers"
	"shipdesk/internal/middleware"
	"shipdesk/internal/session"
	"shipdesk/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func maskEmail(email string) string {
	runes := []rune(email)
	atIdx := -1
	for i, r := range runes {
		if r == '@' {
			atIdx = i
			break
		}
	}
	if atIdx <= 0 {
		return "***"
	}
	prefix := string(runes[:atIdx])
	domain := string(runes[atIdx:])
	if len(prefix) <= 2 {
		return prefix + "***" + domain
	}
	return string(runes[0:2]) + "***" + domain
}

// fieldError: сообщение для поля формы или пустая строка
func fieldError(errs forms.FieldErrors, field string) string {
	if errs == nil {
		return ""
	}
	return errs[field]
}

var funcMap = template.FuncMap{
	"eq":         func(a, b interface{}) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
	"maskEmail":  maskEmail,
	"fieldError": fieldError,
	"date":       func(s string) string { return strings.SplitN(s, "T", 2)[0] },
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(web.Templates, "templates/*.html")
}

func NewRouter(cfg *config.Config, api *backend.Client, journal database.Journal) (*gin.Engine, error) {
	r := gin.Default()

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	store, err := session.NewCookieStore(cfg.SessionSecret, cfg.CookieSecure)
	if err != nil {
		return nil, err
	}
	r.Use(middleware.RequestID())
	r.Use(sessions.Sessions(session.CookieName, store))

	h := handlers.New(api, journal)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// AUTH
	r.GET("/login", middleware.RedirectIfAuthed(), handlers.ShowLogin)
	r.POST("/login", middleware.RedirectIfAuthed(), h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(api))

	pages := auth.Group("/")
	pages.Use(middleware.Chrome())

	pages.GET("/", handlers.IndexPage)
	pages.GET("/dashboard", h.Dashboard)

	// ПРОЕКТЫ
	pages.GET("/projects", h.ListProjects)
	pages.GET("/projects/new", h.NewProjectForm)
	pages.POST("/projects/new", h.NewProjectStep)
	pages.GET("/projects/:id", h.ShowProject)
	pages.POST("/projects/:id/edit", h.UpdateProject)
	pages.POST("/projects/:id/vessel", h.UpdateVessel)

	// ПАРАМЕТРЫ GA И ГЕОМЕТРИЯ КОРПУСА
	pages.GET("/projects/:id/parameters", h.ShowParameters)
	pages.POST("/projects/:id/parameters", h.SaveParameters)
	pages.GET("/projects/:id/hull-geometry", h.ShowHull)
	pages.POST("/projects/:id/hull-geometry", h.SaveHull)

	// АУДИТ
	pages.GET("/audit", h.ListAuditLogs)

	r.NoRoute(handlers.NotFound)

	return r, nil
}
