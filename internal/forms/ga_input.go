package forms

import (
	"strconv"

	"shipdesk/internal/models"
)

const CrewMismatch = "Total Crew must equal Officers + Ratings"

// GAInputForm: параметры GA (страница parameters)
type GAInputForm struct {
	RegulatoryFramework string `form:"regulatory_framework" validate:"required,max=255"`
	ClassNotation       string `form:"class_notation" validate:"max=255"`
	UMSNotation         bool   `form:"ums_notation"`
	ShipType            string `form:"ship_type" validate:"max=255"`
	GrossTonnage        string `form:"gross_tonnage" validate:"omitempty,numeric"`
	Deadweight          string `form:"deadweight" validate:"omitempty,numeric"`
	EnduranceDays       string `form:"endurance_days" validate:"required,numeric"`
	VoyageDurationDays  string `form:"voyage_duration_days" validate:"omitempty,numeric"`
	OfficerCount        string `form:"officer_count" validate:"required,numeric"`
	RatingCount         string `form:"rating_count" validate:"required,numeric"`
	CrewCount           string `form:"crew_count" validate:"required,numeric"`
	PassengerCount      string `form:"passenger_count" validate:"omitempty,numeric"`
	Notes               string `form:"notes" validate:"max=4000"`
}

func GAInputFormFrom(g models.GAInput) GAInputForm {
	f := GAInputForm{
		RegulatoryFramework: g.RegulatoryFramework,
		ClassNotation:       g.ClassNotation,
		UMSNotation:         g.UMSNotation,
		ShipType:            g.ShipType,
		GrossTonnage:        formatOptFloat(g.GrossTonnage),
		Deadweight:          formatOptFloat(g.Deadweight),
		EnduranceDays:       strconv.Itoa(g.EnduranceDays),
		OfficerCount:        strconv.Itoa(g.OfficerCount),
		RatingCount:         strconv.Itoa(g.RatingCount),
		CrewCount:           strconv.Itoa(g.CrewCount),
		PassengerCount:      strconv.Itoa(g.PassengerCount),
		Notes:               g.Notes,
	}
	if g.VoyageDurationDays != nil {
		f.VoyageDurationDays = strconv.Itoa(*g.VoyageDurationDays)
	}
	return f
}

// Validate собирает тело для POST/PUT /gainputs/. Несогласованный
// экипаж помечает crew_count и блокирует отправку.
func (f *GAInputForm) Validate(projectID, vesselID string) (models.GAInput, FieldErrors) {
	trim(&f.RegulatoryFramework, &f.ClassNotation, &f.ShipType, &f.GrossTonnage, &f.Deadweight,
		&f.EnduranceDays, &f.VoyageDurationDays, &f.OfficerCount, &f.RatingCount, &f.CrewCount,
		&f.PassengerCount, &f.Notes)

	errs := check(f)
	g := models.GAInput{
		ProjectID:           projectID,
		VesselID:            vesselID,
		RegulatoryFramework: f.RegulatoryFramework,
		ClassNotation:       f.ClassNotation,
		UMSNotation:         f.UMSNotation,
		ShipType:            f.ShipType,
		GrossTonnage:        optionalFloat(errs, "gross_tonnage", f.GrossTonnage),
		Deadweight:          optionalFloat(errs, "deadweight", f.Deadweight),
		EnduranceDays:       count(errs, "endurance_days", f.EnduranceDays),
		OfficerCount:        count(errs, "officer_count", f.OfficerCount),
		RatingCount:         count(errs, "rating_count", f.RatingCount),
		CrewCount:           count(errs, "crew_count", f.CrewCount),
		PassengerCount:      count(errs, "passenger_count", f.PassengerCount),
		Notes:               f.Notes,
	}
	if f.VoyageDurationDays != "" {
		days := count(errs, "voyage_duration_days", f.VoyageDurationDays)
		if !errs.Has("voyage_duration_days") {
			g.VoyageDurationDays = &days
		}
	}

	if !errs.Has("officer_count") && !errs.Has("rating_count") && !errs.Has("crew_count") && !g.CrewConsistent() {
		errs.Add("crew_count", CrewMismatch)
	}
	return g, errs
}
