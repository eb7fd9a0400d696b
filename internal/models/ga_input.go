package models

// GAInput: параметры general arrangement для проекта.
// Инвариант: OfficerCount + RatingCount == CrewCount.
type GAInput struct {
	GAInputID     string `json:"ga_input_id,omitempty"`
	ProjectID     string `json:"project_id"`
	VesselID      string `json:"vessel_id"`
	VersionNumber int    `json:"version_number,omitempty"`
	VersionStatus string `json:"version_status,omitempty"`

	RegulatoryFramework string   `json:"regulatory_framework"`
	ClassNotation       string   `json:"class_notation"`
	UMSNotation         bool     `json:"ums_notation"`
	ShipType            string   `json:"ship_type"`
	GrossTonnage        *float64 `json:"gross_tonnage"`
	Deadweight          *float64 `json:"deadweight"`
	EnduranceDays       int      `json:"endurance_days"`
	VoyageDurationDays  *int     `json:"voyage_duration_days"`

	CrewCount      int `json:"crew_count"`
	OfficerCount   int `json:"officer_count"`
	RatingCount    int `json:"rating_count"`
	PassengerCount int `json:"passenger_count"`

	Notes string `json:"notes"`
}

func (g GAInput) CrewConsistent() bool {
	return g.OfficerCount+g.RatingCount == g.CrewCount
}
