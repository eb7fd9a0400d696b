package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"shipdesk/internal/backend"
	"shipdesk/internal/forms"
	"shipdesk/internal/middleware"
	"shipdesk/internal/models"
	"shipdesk/internal/session"

	"github.com/gin-gonic/gin"
)

const carryNotice = "notice"

func (h *Handler) ListProjects(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	status := c.Query("status")

	projects, err := middleware.API(c).ListProjects(c.Request.Context())
	if stopped(err) {
		return
	}

	data := gin.H{
		"q":        q,
		"status":   status,
		"statuses": models.ProjectStatuses,
		"notice":   session.Take(c, carryNotice),
	}
	if err != nil {
		c.Error(err)
		data["error"] = backend.UserMessage(err)
		data["projects"] = []models.Project{}
		render(c, backend.StatusFor(err), "projects_list.html", data)
		return
	}

	data["projects"] = filterProjects(projects, q, models.ProjectStatus(status))
	data["total"] = len(projects)
	render(c, http.StatusOK, "projects_list.html", data)
}

// filterProjects: поиск по названию, коду, заказчику и верфи без учёта регистра
func filterProjects(projects []models.Project, q string, status models.ProjectStatus) []models.Project {
	q = strings.ToLower(q)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if status != "" && p.ProjectStatus != status {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p models.Project, q string) bool {
	for _, s := range []string{p.ProjectName, p.ProjectCode, p.ClientName, p.ShipyardName} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// данные страницы проекта (карточка и две формы правки)
type projectPage struct {
	project    *models.Project
	hasGA      bool
	form       forms.ProjectEditForm
	vesselForm forms.VesselForm
	errs       forms.FieldErrors
	vesselErrs forms.FieldErrors
}

func newProjectPage(project *models.Project, hasGA bool) *projectPage {
	pg := &projectPage{
		project: project,
		hasGA:   hasGA,
		form:    forms.ProjectEditFormFrom(*project),
	}
	if project.Vessel != nil {
		pg.vesselForm = forms.VesselFormFrom(*project.Vessel)
	}
	return pg
}

// loadProjectPage: проект + проба GA. false значит ответ уже отдан.
func loadProjectPage(c *gin.Context) (*projectPage, bool) {
	project, ok := loadProject(c)
	if !ok {
		return nil, false
	}
	hasGA, ok := probeGAInput(c, project.ProjectID)
	if !ok {
		return nil, false
	}
	return newProjectPage(project, hasGA), true
}

func (h *Handler) ShowProject(c *gin.Context) {
	pg, ok := loadProjectPage(c)
	if !ok {
		return
	}
	renderProject(c, http.StatusOK, pg, "")
}

// UpdateProject: правка карточки проекта. Проект на ревью не правится.
func (h *Handler) UpdateProject(c *gin.Context) {
	pg, ok := loadProjectPage(c)
	if !ok {
		return
	}
	project := pg.project

	if project.ProjectStatus.Locked() {
		renderProject(c, http.StatusConflict, pg, "Project is locked for review")
		return
	}
	if err := c.ShouldBind(&pg.form); err != nil {
		renderProject(c, http.StatusBadRequest, pg, "Invalid form data")
		return
	}

	update, errs := pg.form.Validate()
	if !errs.Empty() {
		pg.errs = errs
		renderProject(c, http.StatusBadRequest, pg, "Please fix the highlighted fields")
		return
	}

	err := middleware.API(c).UpdateProject(c.Request.Context(), project.ProjectID, update)
	if stopped(err) {
		return
	}
	if err != nil {
		c.Error(err)
		renderProject(c, backend.StatusFor(err), pg, backend.UserMessage(err))
		return
	}

	h.audit(c, "project", project.ProjectID, "update", update.ProjectName)
	_ = session.Carry(c, carryNotice, "Project updated")
	c.Redirect(http.StatusFound, "/projects/"+project.ProjectID)
}

// UpdateVessel: правка главных размерений судна проекта (PUT /vessels/{id})
func (h *Handler) UpdateVessel(c *gin.Context) {
	pg, ok := loadProjectPage(c)
	if !ok {
		return
	}
	project := pg.project

	vesselID := vesselIDOf(project)
	switch {
	case project.ProjectStatus.Locked():
		renderProject(c, http.StatusConflict, pg, "Project is locked for review")
		return
	case vesselID == "":
		renderProject(c, http.StatusConflict, pg, "Project has no vessel")
		return
	}

	if err := c.ShouldBind(&pg.vesselForm); err != nil {
		renderProject(c, http.StatusBadRequest, pg, "Invalid form data")
		return
	}

	in, errs := pg.vesselForm.Validate()
	if !errs.Empty() {
		pg.vesselErrs = errs
		renderProject(c, http.StatusBadRequest, pg, "Please fix the highlighted fields")
		return
	}

	err := middleware.API(c).UpdateVessel(c.Request.Context(), vesselID, in)
	if stopped(err) {
		return
	}
	if err != nil {
		c.Error(err)
		renderProject(c, backend.StatusFor(err), pg, backend.UserMessage(err))
		return
	}

	h.audit(c, "vessel", vesselID, "update", project.ProjectCode)
	_ = session.Carry(c, carryNotice, "Vessel updated")
	c.Redirect(http.StatusFound, "/projects/"+project.ProjectID)
}

func renderProject(c *gin.Context, status int, pg *projectPage, msg string) {
	locked := pg.project.ProjectStatus.Locked()
	data := gin.H{
		"project":    pg.project,
		"form":       pg.form,
		"vesselForm": pg.vesselForm,
		"errors":     pg.errs,
		"vesselErrs": pg.vesselErrs,
		"error":      msg,
		"locked":     locked,
		"hasGA":      pg.hasGA,
		"statuses":   models.ProjectStatuses,
		"areas":      models.NavigationAreas,
		"notice":     session.Take(c, carryNotice),
	}

	// справочник нужен только форме судна; без него форма всё равно работает
	if !locked && pg.project.Vessel != nil {
		vt, err := middleware.API(c).VesselTypes(c.Request.Context())
		if stopped(err) {
			return
		}
		if err != nil {
			c.Error(err)
		}
		data["vesselTypes"] = vt
	}

	render(c, status, "project_detail.html", data)
}

// probeGAInput: есть ли у проекта параметры GA. Отсутствие (404) это
// нормальный ответ; прочие сбои не мешают показать проект.
func probeGAInput(c *gin.Context, projectID string) (bool, bool) {
	_, err := middleware.API(c).LatestGAInput(c.Request.Context(), projectID)
	switch {
	case err == nil:
		return true, true
	case stopped(err):
		return false, false
	case errors.Is(err, backend.ErrNotFound):
		return false, true
	default:
		log.Printf("GA input probe for project %s failed: %v", projectID, err)
		return false, true
	}
}
