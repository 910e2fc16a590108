package model

// OutcomeKind is the terminal state of a reference resolution.
type OutcomeKind int

const (
	// OutcomeUnmatched means the submitted URL is not an OpenVeo video URL.
	// No remote call was made.
	OutcomeUnmatched OutcomeKind = iota
	OutcomePublished
	OutcomeMissing
	// OutcomeRequestFailed means the web service could not be reached or
	// answered with an error. A diagnostic event has been emitted.
	OutcomeRequestFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUnmatched:
		return "unmatched"
	case OutcomePublished:
		return "published"
	case OutcomeMissing:
		return "missing"
	case OutcomeRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving a video id or URL.
// Video is only set for OutcomePublished and Err only for
// OutcomeRequestFailed.
type Outcome struct {
	Kind  OutcomeKind
	ID    string
	Video *Video
	Err   error
}

func Unmatched() Outcome {
	return Outcome{Kind: OutcomeUnmatched}
}

func Published(v *Video) Outcome {
	return Outcome{Kind: OutcomePublished, ID: v.ID, Video: v}
}

func Missing(id string) Outcome {
	return Outcome{Kind: OutcomeMissing, ID: id}
}

func RequestFailed(id string, err error) Outcome {
	return Outcome{Kind: OutcomeRequestFailed, ID: id, Err: err}
}

func (o Outcome) IsPublished() bool {
	return o.Kind == OutcomePublished
}
