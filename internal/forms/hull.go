package forms

import "shipdesk/internal/models"

type HullForm struct {
	LengthOverall               string `form:"length_overall" validate:"required,numeric"`
	LengthBetweenPerpendiculars string `form:"length_between_perpendiculars" validate:"required,numeric"`
	BreadthMoulded              string `form:"breadth_moulded" validate:"required,numeric"`
	DepthMoulded                string `form:"depth_moulded" validate:"required,numeric"`
	DesignDraft                 string `form:"design_draft" validate:"required,numeric"`
	FrameSpacing                string `form:"frame_spacing" validate:"required,numeric"`
	FrameNumberingOrigin        string `form:"frame_numbering_origin" validate:"required,oneof=AP FP"`
	FrameNumberingDirection     string `form:"frame_numbering_direction" validate:"required,oneof=forward aft"`
	ParallelMidbodyLength       string `form:"parallel_midbody_length" validate:"omitempty,numeric"`
	BowRakeAngle                string `form:"bow_rake_angle" validate:"omitempty,numeric"`
	SternRakeAngle              string `form:"stern_rake_angle" validate:"omitempty,numeric"`
	BilgeRadius                 string `form:"bilge_radius" validate:"omitempty,numeric"`
	BulbousBow                  bool   `form:"bulbous_bow"`
	BulbLength                  string `form:"bulb_length" validate:"omitempty,numeric"`
	BulbHeight                  string `form:"bulb_height" validate:"omitempty,numeric"`
}

// DefaultHullForm подставляет главные размерения судна проекта
func DefaultHullForm(v *models.Vessel) HullForm {
	f := HullForm{
		FrameNumberingOrigin:    models.FrameOriginAP,
		FrameNumberingDirection: models.FrameDirectionForward,
	}
	if v == nil {
		return f
	}
	f.LengthOverall = formatFloat(v.LOA)
	f.BreadthMoulded = formatFloat(v.Beam)
	f.DesignDraft = formatFloat(v.Draft)
	f.DepthMoulded = formatOptFloat(v.Depth)
	return f
}

func HullFormFrom(h models.HullGeometry) HullForm {
	f := HullForm{
		LengthOverall:               formatFloat(h.LengthOverall),
		LengthBetweenPerpendiculars: formatFloat(h.LengthBetweenPerpendiculars),
		BreadthMoulded:              formatFloat(h.BreadthMoulded),
		DepthMoulded:                formatFloat(h.DepthMoulded),
		DesignDraft:                 formatFloat(h.DesignDraft),
		FrameSpacing:                formatFloat(h.FrameSpacing),
		FrameNumberingOrigin:        h.FrameNumberingOrigin,
		FrameNumberingDirection:     h.FrameNumberingDirection,
		ParallelMidbodyLength:       formatFloat(h.ParallelMidbodyLength),
		BowRakeAngle:                formatFloat(h.BowRakeAngle),
		SternRakeAngle:              formatFloat(h.SternRakeAngle),
		BilgeRadius:                 formatFloat(h.BilgeRadius),
		BulbousBow:                  h.BulbousBow,
	}
	if h.BulbousBow {
		f.BulbLength = formatFloat(h.BulbLength)
		f.BulbHeight = formatFloat(h.BulbHeight)
	}
	return f
}

func (f *HullForm) Validate(gaInputID string) (models.HullGeometry, FieldErrors) {
	trim(&f.LengthOverall, &f.LengthBetweenPerpendiculars, &f.BreadthMoulded, &f.DepthMoulded,
		&f.DesignDraft, &f.FrameSpacing, &f.FrameNumberingOrigin, &f.FrameNumberingDirection,
		&f.ParallelMidbodyLength, &f.BowRakeAngle, &f.SternRakeAngle, &f.BilgeRadius,
		&f.BulbLength, &f.BulbHeight)

	errs := check(f)
	h := models.HullGeometry{
		GAInputID:                   gaInputID,
		LengthOverall:               positive(errs, "length_overall", f.LengthOverall),
		LengthBetweenPerpendiculars: positive(errs, "length_between_perpendiculars", f.LengthBetweenPerpendiculars),
		BreadthMoulded:              positive(errs, "breadth_moulded", f.BreadthMoulded),
		DepthMoulded:                positive(errs, "depth_moulded", f.DepthMoulded),
		DesignDraft:                 positive(errs, "design_draft", f.DesignDraft),
		FrameSpacing:                positive(errs, "frame_spacing", f.FrameSpacing),
		FrameNumberingOrigin:        f.FrameNumberingOrigin,
		FrameNumberingDirection:     f.FrameNumberingDirection,
		ParallelMidbodyLength:       deref(optionalFloat(errs, "parallel_midbody_length", f.ParallelMidbodyLength)),
		BowRakeAngle:                deref(optionalFloat(errs, "bow_rake_angle", f.BowRakeAngle)),
		SternRakeAngle:              deref(optionalFloat(errs, "stern_rake_angle", f.SternRakeAngle)),
		BilgeRadius:                 deref(optionalFloat(errs, "bilge_radius", f.BilgeRadius)),
		BulbousBow:                  f.BulbousBow,
	}

	// размеры бульба нужны только при bulbous_bow
	if f.BulbousBow {
		for field, raw := range map[string]string{"bulb_length": f.BulbLength, "bulb_height": f.BulbHeight} {
			if raw == "" {
				errs.Add(field, "required")
			}
		}
		h.BulbLength = positive(errs, "bulb_length", f.BulbLength)
		h.BulbHeight = positive(errs, "bulb_height", f.BulbHeight)
	}

	if !errs.Has("length_overall") && !errs.Has("length_between_perpendiculars") &&
		h.LengthBetweenPerpendiculars > h.LengthOverall {
		errs.Add("length_between_perpendiculars", "must not exceed length overall")
	}
	if !errs.Has("design_draft") && !errs.Has("depth_moulded") && h.DesignDraft >= h.DepthMoulded {
		errs.Add("design_draft", "must be less than moulded depth")
	}
	if !errs.Has("parallel_midbody_length") && !errs.Has("length_between_perpendiculars") &&
		h.ParallelMidbodyLength > h.LengthBetweenPerpendiculars {
		errs.Add("parallel_midbody_length", "must not exceed length between perpendiculars")
	}
	return h, errs
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
