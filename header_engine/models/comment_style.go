package models

// CommentStyle describes how header lines are framed for one family of
// languages. Every header line is opened with Open, closed with Close and
// padded in between, so the same eight-line template works for block
// comments and line comments alike.
type CommentStyle struct {
	Name   string // family name, e.g. "c-block"
	Open   string // glyphs starting every header line, e.g. "/* "
	Close  string // glyphs ending every header line, e.g. " */"
	Filler byte   // border filler between Open and Close, e.g. '*'
}

// Inner returns the number of content columns available at the given total
// line width.
func (s CommentStyle) Inner(width int) int {
	return width - len(s.Open) - len(s.Close)
}
