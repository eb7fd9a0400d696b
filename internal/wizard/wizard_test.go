package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipdesk/internal/backend"
	"shipdesk/internal/models"
)

type fakeAPI struct {
	calls []string

	vesselErr  error
	projectErr error
	deleteErr  error

	vessel  models.VesselInput
	project models.ProjectInput
	deleted string
}

func (f *fakeAPI) CreateVessel(ctx context.Context, in models.VesselInput) (string, error) {
	f.calls = append(f.calls, "vessel")
	f.vessel = in
	if f.vesselErr != nil {
		return "", f.vesselErr
	}
	return "V1", nil
}

func (f *fakeAPI) CreateProject(ctx context.Context, in models.ProjectInput) (string, error) {
	f.calls = append(f.calls, "project")
	f.project = in
	if f.projectErr != nil {
		return "", f.projectErr
	}
	return "P1", nil
}

func (f *fakeAPI) DeleteVessel(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.deleted = id
	return f.deleteErr
}

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func filledDraft() *Draft {
	d := New(now)
	d.Vessel.VesselTypeID = "vt-tug"
	d.Vessel.LOA = "50"
	d.Vessel.Beam = "10"
	d.Vessel.Draft = "3"
	d.Vessel.Depth = "5"
	d.Vessel.Displacement = "800"
	d.Vessel.DesignSpeed = "12"
	d.Vessel.ClassSociety = "DNV"

	d.Project.ProjectName = "MV Test"
	d.Project.ProjectCode = "P-01"
	d.Project.ProjectType = "New Build"
	d.Project.ClientName = "Acme"
	d.Project.ShipyardName = "Yard1"
	d.Project.TargetDeliveryDate = "2025-01-01"
	return d
}

func TestNewDefaults(t *testing.T) {
	d := New(now)
	if d.Step != StepVesselInfo || !d.Valid() {
		t.Errorf("step = %v", d.Step)
	}
	if d.Vessel.NavigationArea != "SEA" || d.Vessel.VersionNumber != "1.0" {
		t.Errorf("vessel defaults = %+v", d.Vessel)
	}
	if d.Project.StartDate != "2024-06-01" || d.Project.ProjectStatus != "Active" {
		t.Errorf("project defaults = %+v", d.Project)
	}
}

func TestNextBlockedByValidation(t *testing.T) {
	d := filledDraft()
	d.Vessel.ClassSociety = ""

	errs, err := d.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if len(errs) != 1 || !errs.Has("class_society") {
		t.Errorf("errs = %v", errs)
	}
	if d.Step != StepVesselInfo {
		t.Errorf("step = %v, must stay on vessel info", d.Step)
	}
}

func TestBackPreservesValues(t *testing.T) {
	d := filledDraft()
	if errs, _ := d.Next(); !errs.Empty() {
		t.Fatalf("Next() errs = %v", errs)
	}
	if err := d.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if d.Step != StepVesselInfo || d.Vessel.LOA != "50" || d.Project.ProjectName != "MV Test" {
		t.Errorf("draft after back = %+v", d)
	}
	if err := d.Back(); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Back() on step 1 = %v", err)
	}
}

func TestCancelOnlyFromFirstStep(t *testing.T) {
	d := filledDraft()
	if err := d.Cancel(); err != nil {
		t.Errorf("Cancel() on step 1 = %v", err)
	}
	_, _ = d.Next()
	if err := d.Cancel(); !errors.Is(err, ErrCancelNotAllowed) {
		t.Errorf("Cancel() on step 2 = %v", err)
	}
}

func TestSubmitCreatesVesselThenProject(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()

	api := &fakeAPI{}
	res, errs, err := d.Submit(context.Background(), api)
	if err != nil || !errs.Empty() {
		t.Fatalf("Submit() = %v, %v", errs, err)
	}
	if len(api.calls) != 2 || api.calls[0] != "vessel" || api.calls[1] != "project" {
		t.Fatalf("calls = %v, want [vessel project]", api.calls)
	}
	if api.project.VesselID != "V1" {
		t.Errorf("project payload vesselId = %q, want V1", api.project.VesselID)
	}
	if api.vessel.LOA != 50 || api.vessel.ClassSociety != "DNV" {
		t.Errorf("vessel payload = %+v", api.vessel)
	}
	if res.VesselID != "V1" || res.ProjectID != "P1" || d.Step != StepSubmitted {
		t.Errorf("result = %+v step = %v", res, d.Step)
	}
}

func TestSubmitValidationMakesNoCalls(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()
	d.Project.TargetDeliveryDate = ""

	api := &fakeAPI{}
	_, errs, err := d.Submit(context.Background(), api)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(errs) != 1 || !errs.Has("target_delivery_date") {
		t.Errorf("errs = %v", errs)
	}
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none", api.calls)
	}
	if d.Step != StepProjectInfo {
		t.Errorf("step = %v", d.Step)
	}
}

func TestSubmitOnWrongStep(t *testing.T) {
	d := filledDraft()
	if _, _, err := d.Submit(context.Background(), &fakeAPI{}); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Submit() on step 1 = %v", err)
	}
}

func TestSubmitVesselFailure(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()

	cause := &backend.APIError{Status: 400, Message: "Invalid vessel type"}
	api := &fakeAPI{vesselErr: cause}
	_, _, err := d.Submit(context.Background(), api)

	var serr *SubmitError
	if !errors.As(err, &serr) || serr.Stage != StageVessel {
		t.Fatalf("err = %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("SubmitError must unwrap to the backend error")
	}
	if len(api.calls) != 1 {
		t.Errorf("calls = %v, want only vessel", api.calls)
	}
	if d.Step != StepProjectInfo {
		t.Errorf("step = %v, must stay on project info", d.Step)
	}
}

func TestSubmitProjectFailureRollsBackVessel(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()

	api := &fakeAPI{projectErr: &backend.APIError{Status: 400, Message: "Project code already exists"}}
	_, _, err := d.Submit(context.Background(), api)

	var serr *SubmitError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v", err)
	}
	if serr.Stage != StageProject || serr.VesselID != "V1" || serr.Orphaned {
		t.Errorf("serr = %+v", serr)
	}
	if api.deleted != "V1" {
		t.Errorf("deleted = %q, want V1", api.deleted)
	}
	if d.Step != StepProjectInfo || d.Project.ProjectCode != "P-01" {
		t.Error("draft must be kept for a retry")
	}
}

func TestSubmitProjectFailureCompensationFails(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()

	api := &fakeAPI{
		projectErr: errors.New("connection reset"),
		deleteErr:  errors.New("connection refused"),
	}
	_, _, err := d.Submit(context.Background(), api)

	var serr *SubmitError
	if !errors.As(err, &serr) || !serr.Orphaned || serr.CompensationErr == nil {
		t.Fatalf("err = %#v", err)
	}
}

func TestSubmitUnauthorizedSkipsCompensation(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()

	api := &fakeAPI{projectErr: backend.ErrUnauthorized}
	_, _, err := d.Submit(context.Background(), api)

	if !errors.Is(err, backend.ErrUnauthorized) {
		t.Fatalf("err = %v", err)
	}
	var serr *SubmitError
	if errors.As(err, &serr) && !serr.Orphaned {
		t.Error("vessel must be reported as orphaned")
	}
	if api.deleted != "" {
		t.Error("compensation must not run without a session")
	}
}

func TestSubmitCompensatesAfterClientGone(t *testing.T) {
	d := filledDraft()
	_, _ = d.Next()

	ctx, cancel := context.WithCancel(context.Background())
	api := &cancelingAPI{fakeAPI: &fakeAPI{projectErr: context.Canceled}, cancel: cancel}
	_, _, _ = d.Submit(ctx, api)

	if api.deleteCtxErr != nil {
		t.Errorf("compensation ran with a canceled context: %v", api.deleteCtxErr)
	}
	if api.deleted != "V1" {
		t.Errorf("deleted = %q", api.deleted)
	}
}

type cancelingAPI struct {
	*fakeAPI
	cancel       context.CancelFunc
	deleteCtxErr error
}

func (c *cancelingAPI) CreateProject(ctx context.Context, in models.ProjectInput) (string, error) {
	c.cancel()
	return c.fakeAPI.CreateProject(ctx, in)
}

func (c *cancelingAPI) DeleteVessel(ctx context.Context, id string) error {
	c.deleteCtxErr = ctx.Err()
	return c.fakeAPI.DeleteVessel(ctx, id)
}
