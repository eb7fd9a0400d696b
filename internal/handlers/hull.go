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

type hullState struct {
	project   *models.Project
	gaInputID string
	existing  *models.HullGeometry
}

// loadHullState: геометрия корпуса привязана к GA. id GA берётся из
// перехода со страницы параметров, иначе заново из последней версии GA.
func loadHullState(c *gin.Context, carried string) (*hullState, bool) {
	project, ok := loadProject(c)
	if !ok {
		return nil, false
	}
	if project.ProjectStatus.Locked() {
		_ = session.Carry(c, carryNotice, "Project is locked for review")
		c.Redirect(http.StatusFound, "/projects/"+project.ProjectID)
		return nil, false
	}

	api := middleware.API(c)
	ctx := c.Request.Context()

	gaID := carried
	if gaID == "" {
		ga, err := api.LatestGAInput(ctx, project.ProjectID)
		switch {
		case stopped(err):
			return nil, false
		case errors.Is(err, backend.ErrNotFound):
			_ = session.Carry(c, carryNotice, "Enter the GA parameters before the hull geometry")
			c.Redirect(http.StatusFound, "/projects/"+project.ProjectID+"/parameters")
			return nil, false
		case err != nil:
			c.Error(err)
			renderError(c, backend.StatusFor(err), backend.UserMessage(err))
			return nil, false
		}
		gaID = ga.GAInputID
	}

	hull, err := api.GetHull(ctx, gaID)
	switch {
	case err == nil:
		return &hullState{project: project, gaInputID: gaID, existing: hull}, true
	case stopped(err):
		return nil, false
	case errors.Is(err, backend.ErrNotFound), backend.HasStatus(err, http.StatusMethodNotAllowed):
		// без GET на /hull у бэкенда считаем, что геометрии ещё нет
		return &hullState{project: project, gaInputID: gaID}, true
	default:
		c.Error(err)
		renderError(c, backend.StatusFor(err), backend.UserMessage(err))
		return nil, false
	}
}

func (h *Handler) ShowHull(c *gin.Context) {
	st, ok := loadHullState(c, session.Take(c, gaInputCarry(c.Param("id"))))
	if !ok {
		return
	}

	var form forms.HullForm
	if st.existing != nil {
		form = forms.HullFormFrom(*st.existing)
	} else {
		form = forms.DefaultHullForm(st.project.Vessel)
	}
	renderHull(c, http.StatusOK, st, form, nil, "")
}

// SaveHull: id GA при отправке всегда берётся из свежего запроса
func (h *Handler) SaveHull(c *gin.Context) {
	st, ok := loadHullState(c, "")
	if !ok {
		return
	}

	var form forms.HullForm
	if err := c.ShouldBind(&form); err != nil {
		renderHull(c, http.StatusBadRequest, st, form, nil, "Invalid form data")
		return
	}

	in, errs := form.Validate(st.gaInputID)
	if !errs.Empty() {
		renderHull(c, http.StatusBadRequest, st, form, errs, "Please fix the highlighted fields")
		return
	}

	api := middleware.API(c)
	ctx := c.Request.Context()

	action := "create"
	var err error
	if st.existing != nil {
		action = "update"
		err = api.UpdateHull(ctx, st.gaInputID, in)
	} else {
		err = api.CreateHull(ctx, st.gaInputID, in)
	}
	if stopped(err) {
		return
	}
	if err != nil {
		c.Error(err)
		renderHull(c, backend.StatusFor(err), st, form, nil, backend.UserMessage(err))
		return
	}

	h.audit(c, "hull", st.gaInputID, action, st.project.ProjectCode)
	_ = session.Carry(c, carryNotice, "Hull geometry saved")
	c.Redirect(http.StatusFound, "/projects/"+st.project.ProjectID)
}

func renderHull(c *gin.Context, status int, st *hullState, form forms.HullForm, errs forms.FieldErrors, msg string) {
	render(c, status, "hull_geometry.html", gin.H{
		"project": st.project,
		"form":    form,
		"editing": st.existing != nil,
		"errors":  errs,
		"error":   msg,
		"origins": []string{models.FrameOriginAP, models.FrameOriginFP},
		"dirs":    []string{models.FrameDirectionForward, models.FrameDirectionAft},
	})
}
