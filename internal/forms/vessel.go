package forms

import "shipdesk/internal/models"

// VesselForm: первый шаг мастера. Значения хранятся строками, как пришли
// из браузера, и превращаются в числа только в Validate.
type VesselForm struct {
	VesselTypeID   string `form:"vessel_type_id" json:"vessel_type_id" validate:"required"`
	LOA            string `form:"loa" json:"loa" validate:"required,numeric"`
	Beam           string `form:"beam" json:"beam" validate:"required,numeric"`
	Draft          string `form:"draft" json:"draft" validate:"required,numeric"`
	Depth          string `form:"depth" json:"depth" validate:"required,numeric"`
	Displacement   string `form:"displacement" json:"displacement" validate:"required,numeric"`
	DesignSpeed    string `form:"design_speed" json:"design_speed" validate:"required,numeric"`
	NavigationArea string `form:"navigation_area" json:"navigation_area" validate:"required,oneof=SEA COASTAL RIVER"`
	ClassSociety   string `form:"class_society" json:"class_society" validate:"required,maxbytes=100"`
	VersionNumber  string `form:"version_number" json:"version_number" validate:"required,maxbytes=20"`
}

func DefaultVesselForm() VesselForm {
	return VesselForm{
		NavigationArea: string(models.NavigationSea),
		VersionNumber:  "1.0",
	}
}

// VesselFormFrom: форма правки судна на странице проекта
func VesselFormFrom(v models.Vessel) VesselForm {
	f := VesselForm{
		VesselTypeID:   v.VesselTypeID,
		LOA:            formatFloat(v.LOA),
		Beam:           formatFloat(v.Beam),
		Draft:          formatFloat(v.Draft),
		Depth:          formatOptFloat(v.Depth),
		Displacement:   formatOptFloat(v.Displacement),
		DesignSpeed:    formatOptFloat(v.DesignSpeed),
		NavigationArea: string(v.NavigationArea),
		ClassSociety:   v.ClassSociety,
		VersionNumber:  v.VersionNumber,
	}
	if f.VesselTypeID == "" && v.VesselType != nil {
		f.VesselTypeID = v.VesselType.VesselTypeID
	}
	return f
}

func (f *VesselForm) Validate() (models.VesselInput, FieldErrors) {
	trim(&f.VesselTypeID, &f.LOA, &f.Beam, &f.Draft, &f.Depth, &f.Displacement,
		&f.DesignSpeed, &f.NavigationArea, &f.ClassSociety, &f.VersionNumber)

	errs := check(f)
	in := models.VesselInput{
		VesselTypeID:   f.VesselTypeID,
		LOA:            positive(errs, "loa", f.LOA),
		Beam:           positive(errs, "beam", f.Beam),
		Draft:          positive(errs, "draft", f.Draft),
		Depth:          positive(errs, "depth", f.Depth),
		Displacement:   positive(errs, "displacement", f.Displacement),
		DesignSpeed:    positive(errs, "design_speed", f.DesignSpeed),
		NavigationArea: models.NavigationArea(f.NavigationArea),
		ClassSociety:   f.ClassSociety,
		VersionNumber:  f.VersionNumber,
	}
	return in, errs
}
