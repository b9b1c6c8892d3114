package models

import (
	"time"
)

// TimeLayout is the textual timestamp grammar used inside headers:
// three-letter weekday and month, two-digit day, four-digit year.
const TimeLayout = "Mon Jan 02 15:04:05 2006"

// HeaderFields is the semantic content of a header block.
type HeaderFields struct {
	FileName  string
	Login     string
	Email     string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

// Identity is the caller-supplied author identity stamped into headers.
type Identity struct {
	Name  string
	Email string
}

// Stamp is the (created, updated) pair assigned to one file for a run.
type Stamp struct {
	Created time.Time
	Updated time.Time
}

// Span is a half-open byte range [Start, End) in the original file content.
type Span struct {
	Start int
	End   int
}

// ParsedHeader is the result of scanning the top of a file for a header.
// When Present is false the other fields are zero.
type ParsedHeader struct {
	Present bool
	Fields  HeaderFields
	Span    Span
	Width   int
}
