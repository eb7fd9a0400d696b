package handlers

import (
	"errors"
	"net/http"
	"time"

	"shipdesk/internal/backend"
	"shipdesk/internal/database"
	"shipdesk/internal/middleware"
	"shipdesk/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler держит зависимости страниц (клиент бэкенда, журнал аудита)
type Handler struct {
	API     *backend.Client
	Journal database.Journal
	Now     func() time.Time
}

func New(api *backend.Client, journal database.Journal) *Handler {
	if journal == nil {
		journal = database.NopJournal{}
	}
	return &Handler{API: api, Journal: journal, Now: time.Now}
}

var pageTitles = map[string]string{
	"login.html":             "Sign in",
	"dashboard.html":         "Dashboard",
	"projects_list.html":     "Projects",
	"projects_new.html":      "New Project",
	"project_detail.html":    "Project",
	"project_not_found.html": "Project not found",
	"parameters.html":        "Parameters",
	"hull_geometry.html":     "Hull Geometry",
	"audit_list.html":        "Audit",
	"error.html":             "Error",
}

// render: обёртка над c.HTML, которая во все шаблоны прокидывает
// пользователя и боковое меню.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if s, ok := middleware.CurrentSession(c); ok {
		data["CurrentUser"] = s
		data["CurrentUsername"] = s.DisplayName
		data["CurrentUserRole"] = s.RoleName
	}
	if nav, ok := c.Get("NavModules"); ok {
		data["Nav"] = nav
	}
	if _, ok := data["error"]; !ok {
		data["error"] = ""
	}
	if _, ok := data["title"]; !ok {
		data["title"] = pageTitles[tmpl]
	}

	c.HTML(status, tmpl, data)
}

func renderError(c *gin.Context, status int, msg string) {
	render(c, status, "error.html", gin.H{"message": msg, "status": status})
}

// stopped: 401 уже обработан перехватчиком, рисовать больше нечего
func stopped(err error) bool {
	return errors.Is(err, backend.ErrUnauthorized)
}

// projectIDParam: id проекта из пути; бэкенд принимает только UUID
func projectIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		render(c, http.StatusNotFound, "project_not_found.html", nil)
		return "", false
	}
	return id, true
}

// loadProject: общий шаг страниц проекта. false значит ответ уже отдан.
func loadProject(c *gin.Context) (*models.Project, bool) {
	id, ok := projectIDParam(c)
	if !ok {
		return nil, false
	}

	project, err := middleware.API(c).GetProject(c.Request.Context(), id)
	switch {
	case err == nil:
		return project, true
	case stopped(err):
		return nil, false
	default:
		// детали проекта без повторной попытки: просто "не найден"
		if !errors.Is(err, backend.ErrNotFound) {
			c.Error(err)
		}
		render(c, http.StatusNotFound, "project_not_found.html", nil)
		return nil, false
	}
}

func vesselIDOf(p *models.Project) string {
	if p.VesselID != "" {
		return p.VesselID
	}
	if p.Vessel != nil {
		return p.Vessel.VesselID
	}
	return ""
}

// audit пишет в журнал от имени текущего пользователя
func (h *Handler) audit(c *gin.Context, entity, entityID, action, details string) {
	entry := models.AuditLog{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if s, ok := middleware.CurrentSession(c); ok {
		entry.UserID = s.UserID
		entry.UserName = s.DisplayName
	}
	h.Journal.Record(entry)
}
