package domain

type PitchRequest struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
}

// PitchResponse pode vir parcial: o backend atual só devolve o campo pitch.
type PitchResponse struct {
	SubjectLine  *string `json:"subject_line,omitempty"`
	Pitch        *string `json:"pitch,omitempty"`
	CallToAction *string `json:"call_to_action,omitempty"`
}
