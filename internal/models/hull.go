package models

type HullGeometry struct {
	GAInputID string `json:"ga_input_id,omitempty"`

	// главные размерения
	LengthOverall               float64 `json:"length_overall"`
	LengthBetweenPerpendiculars float64 `json:"length_between_perpendiculars"`
	BreadthMoulded              float64 `json:"breadth_moulded"`
	DepthMoulded                float64 `json:"depth_moulded"`
	DesignDraft                 float64 `json:"design_draft"`

	FrameSpacing            float64 `json:"frame_spacing"`
	FrameNumberingOrigin    string  `json:"frame_numbering_origin"`
	FrameNumberingDirection string  `json:"frame_numbering_direction"`

	// продольная и поперечная форма
	ParallelMidbodyLength float64 `json:"parallel_midbody_length"`
	BowRakeAngle          float64 `json:"bow_rake_angle"`
	SternRakeAngle        float64 `json:"stern_rake_angle"`
	BilgeRadius           float64 `json:"bilge_radius"`

	BulbousBow bool    `json:"bulbous_bow"`
	BulbLength float64 `json:"bulb_length"`
	BulbHeight float64 `json:"bulb_height"`
}

const (
	FrameOriginAP = "AP"
	FrameOriginFP = "FP"

	FrameDirectionForward = "forward"
	FrameDirectionAft     = "aft"
)
