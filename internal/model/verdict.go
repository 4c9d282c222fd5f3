package model

// RejectReason explains why a submitted placement was refused
type RejectReason string

const (
	RejectNone                RejectReason = ""
	RejectEmptyPlacement      RejectReason = "empty_placement"
	RejectMissingCenterAnchor RejectReason = "missing_center_anchor"
	RejectNotConnected        RejectReason = "not_connected"
	RejectNotCollinear        RejectReason = "not_collinear"
	RejectGapInWord           RejectReason = "gap_in_word"
	RejectWordTooShort        RejectReason = "word_too_short"
)

// Verdict is the outcome of validating the pending placement
type Verdict struct {
	Reason RejectReason `json:"reason,omitempty"`
	Axis   Axis         `json:"axis,omitempty"` // Set once collinearity has been established
}

// Accept builds an accepting verdict along the axis
func Accept(axis Axis) Verdict {
	return Verdict{Axis: axis}
}

// Reject builds a rejecting verdict
func Reject(reason RejectReason) Verdict {
	return Verdict{Reason: reason}
}

// Accepted returns true if the placement passed every check
func (v Verdict) Accepted() bool {
	return v.Reason == RejectNone
}
