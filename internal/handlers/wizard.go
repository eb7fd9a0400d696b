package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"shipdesk/internal/backend"
	"shipdesk/internal/forms"
	"shipdesk/internal/middleware"
	"shipdesk/internal/models"
	"shipdesk/internal/session"
	"shipdesk/internal/wizard"

	"github.com/gin-gonic/gin"
)

// loadDraft: черновик мастера из сессии или новый
func (h *Handler) loadDraft(c *gin.Context) *wizard.Draft {
	var d wizard.Draft
	if session.LoadDraft(c, &d) && d.Valid() {
		return &d
	}
	return wizard.New(h.Now())
}

func (h *Handler) NewProjectForm(c *gin.Context) {
	d := h.loadDraft(c)
	h.renderWizard(c, http.StatusOK, d, nil, "")
}

// NewProjectStep: все кнопки мастера (next, back, cancel, submit) приходят сюда
func (h *Handler) NewProjectStep(c *gin.Context) {
	d := h.loadDraft(c)

	var err error
	switch d.Step {
	case wizard.StepVesselInfo:
		err = c.ShouldBind(&d.Vessel)
	case wizard.StepProjectInfo:
		err = c.ShouldBind(&d.Project)
	}
	if err != nil {
		h.renderWizard(c, http.StatusBadRequest, d, nil, "Invalid form data")
		return
	}

	switch c.PostForm("action") {
	case "next":
		errs, err := d.Next()
		if err != nil {
			h.renderWizard(c, http.StatusBadRequest, d, nil, wizardMessage(err))
			return
		}
		if !errs.Empty() {
			h.keepDraft(c, d)
			h.renderWizard(c, http.StatusBadRequest, d, errs, "Please fix the highlighted fields")
			return
		}
		if err := h.saveDraft(c, d); err != nil {
			d.Step = wizard.StepVesselInfo
			h.renderWizard(c, draftStatus(err), d, nil, draftMessage(err))
			return
		}
		c.Redirect(http.StatusFound, "/projects/new")

	case "back":
		if err := d.Back(); err != nil {
			h.renderWizard(c, http.StatusBadRequest, d, nil, wizardMessage(err))
			return
		}
		if err := h.saveDraft(c, d); err != nil {
			// остаёмся на втором шаге, введённое не теряется
			d.Step = wizard.StepProjectInfo
			h.renderWizard(c, draftStatus(err), d, nil, draftMessage(err))
			return
		}
		c.Redirect(http.StatusFound, "/projects/new")

	case "cancel":
		if err := d.Cancel(); err != nil {
			h.renderWizard(c, http.StatusBadRequest, d, nil, wizardMessage(err))
			return
		}
		_ = session.ClearDraft(c)
		c.Redirect(http.StatusFound, "/projects")

	case "submit":
		h.submitWizard(c, d)

	default:
		h.renderWizard(c, http.StatusBadRequest, d, nil, "Unknown action")
	}
}

func (h *Handler) submitWizard(c *gin.Context, d *wizard.Draft) {
	res, errs, err := d.Submit(c.Request.Context(), middleware.API(c))

	var serr *wizard.SubmitError
	switch {
	case errors.As(err, &serr):
		if stopped(err) && c.IsAborted() {
			// сессия уже сброшена перехватчиком, черновик пропал вместе с ней
			if serr.Orphaned {
				log.Printf("wizard: vessel %s left without a project after logout", serr.VesselID)
			}
			return
		}
		h.keepDraft(c, d)
		h.renderWizard(c, backend.StatusFor(serr.Err), d, nil, h.submitMessage(c, serr))
		return
	case err != nil:
		h.renderWizard(c, http.StatusBadRequest, d, nil, wizardMessage(err))
		return
	case !errs.Empty():
		h.keepDraft(c, d)
		h.renderWizard(c, http.StatusBadRequest, d, errs, "Please fix the highlighted fields")
		return
	}

	h.audit(c, "vessel", res.VesselID, "create", d.Project.ProjectCode)
	h.audit(c, "project", res.ProjectID, "create", d.Project.ProjectName)
	if err := session.ClearDraft(c); err != nil {
		log.Printf("wizard: failed to clear draft: %v", err)
	}
	_ = session.Carry(c, carryNotice, fmt.Sprintf("Project %s created", d.Project.ProjectCode))
	c.Redirect(http.StatusFound, "/projects")
}

func (h *Handler) submitMessage(c *gin.Context, serr *wizard.SubmitError) string {
	msg := backend.UserMessage(serr.Err)
	if serr.Stage == wizard.StageVessel {
		return "Could not create vessel: " + msg
	}

	if serr.Orphaned {
		log.Printf("wizard: vessel %s orphaned: %v (rollback: %v)", serr.VesselID, serr.Err, serr.CompensationErr)
		h.audit(c, "vessel", serr.VesselID, "orphaned", serr.Error())
		return fmt.Sprintf("Could not create project: %s. Vessel %s was created but could not be removed.", msg, serr.VesselID)
	}
	return "Could not create project: " + msg
}

func (h *Handler) saveDraft(c *gin.Context, d *wizard.Draft) error {
	err := session.SaveDraft(c, d)
	if err != nil {
		log.Printf("wizard: failed to save draft: %v", err)
	}
	return err
}

// keepDraft: страница всё равно рисуется из памяти, ошибка сохранения
// только пишется в лог
func (h *Handler) keepDraft(c *gin.Context, d *wizard.Draft) {
	_ = h.saveDraft(c, d)
}

func draftStatus(err error) int {
	if errors.Is(err, session.ErrDraftTooLarge) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func draftMessage(err error) string {
	if errors.Is(err, session.ErrDraftTooLarge) {
		return "The form is too large to keep between steps, please shorten the longer text fields"
	}
	return "Could not keep the form between steps, please try again"
}

func wizardMessage(err error) string {
	switch {
	case errors.Is(err, wizard.ErrCancelNotAllowed):
		return "Cancel is only available on the first step"
	case errors.Is(err, wizard.ErrWrongStep):
		return "This action is not available on the current step"
	}
	log.Printf("wizard: %v", err)
	return "This action could not be completed"
}

func (h *Handler) renderWizard(c *gin.Context, status int, d *wizard.Draft, errs forms.FieldErrors, msg string) {
	data := gin.H{
		"draft":    d,
		"step":     int(d.Step),
		"errors":   errs,
		"error":    msg,
		"areas":    models.NavigationAreas,
		"types":    models.ProjectTypes,
		"statuses": models.ProjectStatuses,
	}

	if d.Step == wizard.StepVesselInfo {
		vt, err := middleware.API(c).VesselTypes(c.Request.Context())
		if stopped(err) {
			return
		}
		if err != nil {
			c.Error(err)
			data["typesError"] = "Vessel types could not be loaded"
		}
		data["vesselTypes"] = vt
	}

	render(c, status, "projects_new.html", data)
}
