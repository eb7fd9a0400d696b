package models

type ProjectType string
type ProjectStatus string

const (
	ProjectNewBuild   ProjectType = "New Build"
	ProjectRetrofit   ProjectType = "Retrofit"
	ProjectConversion ProjectType = "Conversion"

	StatusDraft       ProjectStatus = "Draft"
	StatusActive      ProjectStatus = "Active"
	StatusUnderReview ProjectStatus = "Under Review"
	StatusApproved    ProjectStatus = "Approved"
	StatusCompleted   ProjectStatus = "Completed"
	StatusCancelled   ProjectStatus = "Cancelled"
)

var ProjectTypes = []ProjectType{ProjectNewBuild, ProjectRetrofit, ProjectConversion}

var ProjectStatuses = []ProjectStatus{
	StatusDraft,
	StatusActive,
	StatusUnderReview,
	StatusApproved,
	StatusCompleted,
	StatusCancelled,
}

func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// на ревью проект заблокирован для правок
func (s ProjectStatus) Locked() bool {
	return s == StatusUnderReview
}

type Project struct {
	ProjectID          string        `json:"project_id"`
	ProjectCode        string        `json:"project_code"`
	ProjectName        string        `json:"project_name"`
	ProjectType        ProjectType   `json:"project_type"`
	ClientName         string        `json:"client_name"`
	ShipyardName       string        `json:"shipyard_name"`
	ProjectStatus      ProjectStatus `json:"project_status"`
	VesselID           string        `json:"vessel_id"`
	StartDate          string        `json:"start_date"`
	TargetDeliveryDate string        `json:"target_delivery_date"`
	CreatedBy          string        `json:"created_by"`
	CreatedAt          string        `json:"created_at"`

	Vessel *Vessel `json:"vessel,omitempty"`
}

// ProjectInput: тело POST /projects/ (camelCase, как у бэкенда)
type ProjectInput struct {
	ProjectName        string        `json:"projectName"`
	ProjectCode        string        `json:"projectCode"`
	ProjectType        ProjectType   `json:"projectType"`
	ClientName         string        `json:"clientName"`
	ShipyardName       string        `json:"shipyardName"`
	ProjectStatus      ProjectStatus `json:"projectStatus"`
	VesselID           string        `json:"vesselId"`
	StartDate          string        `json:"startDate"`
	TargetDeliveryDate string        `json:"targetDeliveryDate"`
}

// ProjectUpdate: тело PUT /projects/{id}
type ProjectUpdate struct {
	ProjectName        string        `json:"project_name"`
	ProjectCode        string        `json:"project_code"`
	ClientName         string        `json:"client_name"`
	ShipyardName       string        `json:"shipyard_name"`
	ProjectStatus      ProjectStatus `json:"project_status"`
	StartDate          string        `json:"start_date"`
	TargetDeliveryDate string        `json:"target_delivery_date"`
}
