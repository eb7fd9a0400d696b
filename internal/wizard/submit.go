package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipdesk/internal/backend"
	"shipdesk/internal/forms"
	"shipdesk/internal/models"
)

const compensateTimeout = 10 * time.Second

// Creator: то, что мастеру нужно от API
type Creator interface {
	CreateVessel(ctx context.Context, in models.VesselInput) (string, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (string, error)
	DeleteVessel(ctx context.Context, id string) error
}

type Stage string

const (
	StageVessel  Stage = "vessel"
	StageProject Stage = "project"
)

type Result struct {
	VesselID  string
	ProjectID string
}

// SubmitError: сбой на одном из двух вызовов. Orphaned означает, что
// судно VesselID осталось в бэкенде без проекта.
type SubmitError struct {
	Stage           Stage
	VesselID        string
	Orphaned        bool
	Err             error
	CompensationErr error
}

func (e *SubmitError) Error() string {
	switch {
	case e.Stage == StageVessel:
		return fmt.Sprintf("create vessel: %v", e.Err)
	case e.Orphaned:
		return fmt.Sprintf("create project: %v (vessel %s left without a project)", e.Err, e.VesselID)
	default:
		return fmt.Sprintf("create project: %v (vessel %s rolled back)", e.Err, e.VesselID)
	}
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Submit: финальный переход шага 2. Сначала судно, потом проект со ссылкой
// на id судна. Если проект не создался, судно удаляется (компенсация).
// Ошибки валидации возвращаются отдельно и ни одного вызова не делают.
func (d *Draft) Submit(ctx context.Context, api Creator) (*Result, forms.FieldErrors, error) {
	if d.Step != StepProjectInfo {
		return nil, nil, ErrWrongStep
	}

	vessel, errs := d.Vessel.Validate()
	if !errs.Empty() {
		// шаг 1 испорчен, возвращаем туда
		d.Step = StepVesselInfo
		return nil, errs, nil
	}
	project, errs := d.Project.Validate()
	if !errs.Empty() {
		return nil, errs, nil
	}

	vesselID, err := api.CreateVessel(ctx, vessel)
	if err != nil {
		return nil, nil, &SubmitError{Stage: StageVessel, Err: err}
	}

	project.VesselID = vesselID
	projectID, err := api.CreateProject(ctx, project)
	if err != nil {
		return nil, nil, compensate(ctx, api, vesselID, err)
	}

	d.Step = StepSubmitted
	return &Result{VesselID: vesselID, ProjectID: projectID}, nil, nil
}

func compensate(ctx context.Context, api Creator, vesselID string, cause error) *SubmitError {
	serr := &SubmitError{Stage: StageProject, VesselID: vesselID, Err: cause}

	// с протухшим токеном удалить всё равно не получится
	if errors.Is(cause, backend.ErrUnauthorized) {
		serr.Orphaned = true
		return serr
	}

	// откат доводим до конца, даже если браузер уже ушёл
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	if err := api.DeleteVessel(cctx, vesselID); err != nil {
		serr.Orphaned = true
		serr.CompensationErr = err
	}
	return serr
}
