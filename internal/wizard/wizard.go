package wizard

import (
	"errors"
	"time"

	"shipdesk/internal/forms"
)

type Step int

const (
	StepVesselInfo  Step = 1
	StepProjectInfo Step = 2
	StepSubmitted   Step = 3
)

func (s Step) String() string {
	switch s {
	case StepVesselInfo:
		return "vessel info"
	case StepProjectInfo:
		return "project info"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrCancelNotAllowed = errors.New("wizard: cancel is only available on the first step")
	ErrWrongStep        = errors.New("wizard: action not allowed on this step")
)

// Draft: состояние мастера между запросами. Ничего не создаётся
// до финального Submit, поэтому переходы по шагам не оставляют записей в бэкенде.
type Draft struct {
	Step    Step              `json:"step"`
	Vessel  forms.VesselForm  `json:"vessel"`
	Project forms.ProjectForm `json:"project"`
}

func New(now time.Time) *Draft {
	return &Draft{
		Step:    StepVesselInfo,
		Vessel:  forms.DefaultVesselForm(),
		Project: forms.DefaultProjectForm(now),
	}
}

// Valid: черновик из cookie мог устареть или быть испорчен
func (d *Draft) Valid() bool {
	return d.Step == StepVesselInfo || d.Step == StepProjectInfo
}

// Next: шаг 1 → 2 только если все поля судна валидны.
// При ошибках шаг не меняется.
func (d *Draft) Next() (forms.FieldErrors, error) {
	if d.Step != StepVesselInfo {
		return nil, ErrWrongStep
	}
	if _, errs := d.Vessel.Validate(); !errs.Empty() {
		return errs, nil
	}
	d.Step = StepProjectInfo
	return forms.FieldErrors{}, nil
}

// Back: шаг 2 → 1, введённые значения сохраняются
func (d *Draft) Back() error {
	if d.Step != StepProjectInfo {
		return ErrWrongStep
	}
	d.Step = StepVesselInfo
	return nil
}

func (d *Draft) Cancel() error {
	if d.Step != StepVesselInfo {
		return ErrCancelNotAllowed
	}
	return nil
}
