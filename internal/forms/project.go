package forms

import (
	"time"

	"shipdesk/internal/models"
)

// ProjectForm: второй шаг мастера
type ProjectForm struct {
	ProjectName        string `form:"project_name" json:"project_name" validate:"required,maxbytes=255"`
	ProjectCode        string `form:"project_code" json:"project_code" validate:"required,maxbytes=50"`
	ProjectType        string `form:"project_type" json:"project_type" validate:"required,oneof='New Build' Retrofit Conversion"`
	ClientName         string `form:"client_name" json:"client_name" validate:"required,maxbytes=255"`
	ShipyardName       string `form:"shipyard_name" json:"shipyard_name" validate:"required,maxbytes=255"`
	ProjectStatus      string `form:"project_status" json:"project_status" validate:"required"`
	StartDate          string `form:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	TargetDeliveryDate string `form:"target_delivery_date" json:"target_delivery_date" validate:"required,datetime=2006-01-02"`
}

func DefaultProjectForm(now time.Time) ProjectForm {
	return ProjectForm{
		ProjectStatus: string(models.StatusActive),
		StartDate:     now.Format(DateLayout),
	}
}

// Validate собирает тело POST /projects/. vesselID подставляется позже,
// когда судно уже создано.
func (f *ProjectForm) Validate() (models.ProjectInput, FieldErrors) {
	trim(&f.ProjectName, &f.ProjectCode, &f.ProjectType, &f.ClientName, &f.ShipyardName,
		&f.ProjectStatus, &f.StartDate, &f.TargetDeliveryDate)

	errs := check(f)
	if !errs.Has("project_status") && !models.ProjectStatus(f.ProjectStatus).Valid() {
		errs.Add("project_status", "unknown status")
	}
	checkDateOrder(errs, "start_date", f.StartDate, "target_delivery_date", f.TargetDeliveryDate)

	return models.ProjectInput{
		ProjectName:        f.ProjectName,
		ProjectCode:        f.ProjectCode,
		ProjectType:        models.ProjectType(f.ProjectType),
		ClientName:         f.ClientName,
		ShipyardName:       f.ShipyardName,
		ProjectStatus:      models.ProjectStatus(f.ProjectStatus),
		StartDate:          f.StartDate,
		TargetDeliveryDate: f.TargetDeliveryDate,
	}, errs
}

func checkDateOrder(errs FieldErrors, startField, start, endField, end string) {
	s := date(errs, startField, start)
	e := date(errs, endField, end)
	if s.IsZero() || e.IsZero() {
		return
	}
	if e.Before(s) {
		errs.Add(endField, "must not be before the start date")
	}
}

// ProjectEditForm: правка проекта на странице деталей
type ProjectEditForm struct {
	ProjectName        string `form:"project_name" validate:"required,max=255"`
	ProjectCode        string `form:"project_code" validate:"required,max=50"`
	ClientName         string `form:"client_name" validate:"max=255"`
	ShipyardName       string `form:"shipyard_name" validate:"max=255"`
	ProjectStatus      string `form:"project_status" validate:"required"`
	StartDate          string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	TargetDeliveryDate string `form:"target_delivery_date" validate:"omitempty,datetime=2006-01-02"`
}

func ProjectEditFormFrom(p models.Project) ProjectEditForm {
	return ProjectEditForm{
		ProjectName:        p.ProjectName,
		ProjectCode:        p.ProjectCode,
		ClientName:         p.ClientName,
		ShipyardName:       p.ShipyardName,
		ProjectStatus:      string(p.ProjectStatus),
		StartDate:          dateOnly(p.StartDate),
		TargetDeliveryDate: dateOnly(p.TargetDeliveryDate),
	}
}

func (f *ProjectEditForm) Validate() (models.ProjectUpdate, FieldErrors) {
	trim(&f.ProjectName, &f.ProjectCode, &f.ClientName, &f.ShipyardName,
		&f.ProjectStatus, &f.StartDate, &f.TargetDeliveryDate)

	errs := check(f)
	if !errs.Has("project_status") && !models.ProjectStatus(f.ProjectStatus).Valid() {
		errs.Add("project_status", "unknown status")
	}
	checkDateOrder(errs, "start_date", f.StartDate, "target_delivery_date", f.TargetDeliveryDate)

	return models.ProjectUpdate{
		ProjectName:        f.ProjectName,
		ProjectCode:        f.ProjectCode,
		ClientName:         f.ClientName,
		ShipyardName:       f.ShipyardName,
		ProjectStatus:      models.ProjectStatus(f.ProjectStatus),
		StartDate:          f.StartDate,
		TargetDeliveryDate: f.TargetDeliveryDate,
	}, errs
}
