package models

// OutcomeKind classifies what happened to a single file.
type OutcomeKind int

const (
	OutcomeSkipped OutcomeKind = iota
	OutcomeUnchanged
	OutcomeInserted
	OutcomeUpdated
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// RewriteOutcome describes the decision taken for one file, with the old and
// new field sets attached for diff display when a header was written.
type RewriteOutcome struct {
	Kind      OutcomeKind
	Reason    string // set for OutcomeSkipped and OutcomeFailed
	OldFields *HeaderFields
	NewFields *HeaderFields
}

// Options controls how a single file is processed.
type Options struct {
	AddMissing    bool // insert a header when none is present
	PreserveWidth bool // re-render an existing header at its parsed width
	Width         int  // target line width; 0 means the default
	ClampSameDay  bool // clamp Updated to Created on same-day clock skew
}

// FileResult is the full result of processing one file. NewContent is always
// populated; for skipped and unchanged files it aliases the original content,
// so a dry run and a commit run see the same bytes.
type FileResult struct {
	RelativePath string
	Outcome      RewriteOutcome
	NewContent   []byte
	OldHash      uint64
	NewHash      uint64
	Err          error
}

// Changed reports whether the file content needs to be written back.
func (r FileResult) Changed() bool {
	return r.Outcome.Kind == OutcomeInserted || r.Outcome.Kind == OutcomeUpdated
}
