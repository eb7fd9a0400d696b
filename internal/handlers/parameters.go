package handlers

import (
	"errors"
	"net/http"

	"shipdesk/internal/backend"
	"shipdesk/internal/forms"
	"shipdesk/internal/middleware"
	"shipdesk/internal/models"
	"shipdesk/internal/session"

	"github.com/gin-gonic/gin"
)

const carryGAInput = "ga_input_id"

// gaInputCarry: id GA передаётся только странице корпуса того же проекта
func gaInputCarry(projectID string) string {
	return carryGAInput + ":" + projectID
}

// gaState: текущие параметры GA проекта; existing == nil значит режим создания
type gaState struct {
	project  *models.Project
	existing *models.GAInput
}

// loadGAState: проект + свежая проверка наличия GA. Режим (создание или
// правка) всегда определяется заново, поэтому повторная отправка будет PUT.
func loadGAState(c *gin.Context) (*gaState, bool) {
	project, ok := loadProject(c)
	if !ok {
		return nil, false
	}
	if project.ProjectStatus.Locked() {
		_ = session.Carry(c, carryNotice, "Project is locked for review")
		c.Redirect(http.StatusFound, "/projects/"+project.ProjectID)
		return nil, false
	}

	ga, err := middleware.API(c).LatestGAInput(c.Request.Context(), project.ProjectID)
	switch {
	case err == nil:
		return &gaState{project: project, existing: ga}, true
	case stopped(err):
		return nil, false
	case errors.Is(err, backend.ErrNotFound):
		return &gaState{project: project}, true
	default:
		c.Error(err)
		renderError(c, backend.StatusFor(err), backend.UserMessage(err))
		return nil, false
	}
}

func (h *Handler) ShowParameters(c *gin.Context) {
	st, ok := loadGAState(c)
	if !ok {
		return
	}

	form := forms.GAInputForm{}
	if st.existing != nil {
		form = forms.GAInputFormFrom(*st.existing)
	}
	renderParameters(c, http.StatusOK, st, form, nil, "")
}

func (h *Handler) SaveParameters(c *gin.Context) {
	st, ok := loadGAState(c)
	if !ok {
		return
	}

	var form forms.GAInputForm
	if err := c.ShouldBind(&form); err != nil {
		renderParameters(c, http.StatusBadRequest, st, form, nil, "Invalid form data")
		return
	}

	in, errs := form.Validate(st.project.ProjectID, vesselIDOf(st.project))
	if !errs.Empty() {
		renderParameters(c, http.StatusBadRequest, st, form, errs, "Please fix the highlighted fields")
		return
	}

	api := middleware.API(c)
	ctx := c.Request.Context()

	var gaID, action string
	var err error
	if st.existing != nil {
		gaID, action = st.existing.GAInputID, "update"
		err = api.UpdateGAInput(ctx, gaID, in)
	} else {
		action = "create"
		gaID, err = api.CreateGAInput(ctx, in)
	}
	if stopped(err) {
		return
	}
	if err != nil {
		c.Error(err)
		renderParameters(c, backend.StatusFor(err), st, form, nil, backend.UserMessage(err))
		return
	}

	h.audit(c, "ga_input", gaID, action, st.project.ProjectCode)
	_ = session.Carry(c, gaInputCarry(st.project.ProjectID), gaID)
	c.Redirect(http.StatusFound, "/projects/"+st.project.ProjectID+"/hull-geometry")
}

func renderParameters(c *gin.Context, status int, st *gaState, form forms.GAInputForm, errs forms.FieldErrors, msg string) {
	render(c, status, "parameters.html", gin.H{
		"project":  st.project,
		"form":     form,
		"editing":  st.existing != nil,
		"errors":   errs,
		"error":    msg,
		"mismatch": errs.Has("crew_count") && errs["crew_count"] == forms.CrewMismatch,
		"notice":   session.Take(c, carryNotice),
	})
}
