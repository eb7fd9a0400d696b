package models

type NavigationArea string

const (
	NavigationSea     NavigationArea = "SEA"
	NavigationCoastal NavigationArea = "COASTAL"
	NavigationRiver   NavigationArea = "RIVER"
)

var NavigationAreas = []NavigationArea{NavigationSea, NavigationCoastal, NavigationRiver}

// VesselType: справочник типов судов (GET /vessels/types)
type VesselType struct {
	VesselTypeID string `json:"vessel_type_id"`
	TypeCode     string `json:"type_code"`
	TypeName     string `json:"type_name"`
	Description  string `json:"description"`
}

type Vessel struct {
	VesselID       string         `json:"vessel_id"`
	VesselTypeID   string         `json:"vessel_type_id,omitempty"`
	LOA            float64        `json:"loa"`
	Beam           float64        `json:"beam"`
	Draft          float64        `json:"draft"`
	Depth          *float64       `json:"depth"`
	Displacement   *float64       `json:"displacement"`
	DesignSpeed    *float64       `json:"design_speed"`
	NavigationArea NavigationArea `json:"navigation_area"`
	ClassSociety   string         `json:"class_society"`
	VersionNumber  string         `json:"version_number"`

	VesselType *VesselType `json:"vessel_type,omitempty"`
}

// VesselInput: тело POST/PUT /vessels/. Бэкенд ждёт camelCase.
type VesselInput struct {
	VesselTypeID   string         `json:"vesselTypeId"`
	LOA            float64        `json:"loa"`
	Beam           float64        `json:"beam"`
	Draft          float64        `json:"draft"`
	Depth          float64        `json:"depth"`
	Displacement   float64        `json:"displacement"`
	DesignSpeed    float64        `json:"designSpeed"`
	NavigationArea NavigationArea `json:"navigationArea"`
	ClassSociety   string         `json:"classSociety"`
	VersionNumber  string         `json:"versionNumber"`
}
