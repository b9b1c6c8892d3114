package header_engine

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/headstamp/headstamp/header_engine/models"
)

const (
	// DefaultWidth is the total line width of a rendered header.
	DefaultWidth = 80
	// MinWidth keeps the timestamp lines from being truncated into
	// something the parser would reject.
	MinWidth = 50

	headerLineCount = 8
)

// normalizeWidth clamps a requested width into the supported range.
func normalizeWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	if width < MinWidth {
		return MinWidth
	}
	return width
}

// RenderHeader produces the full header block for the given fields and
// comment style. The output is deterministic: same fields, style and width
// always yield byte-identical text. Every line is exactly width bytes plus a
// trailing newline. The block layout is:
//
//	border
//	blank
//	file name
//	By: login <email>
//	Created: <timestamp> by <name>
//	Updated: <timestamp> by <name>
//	blank
//	border
func RenderHeader(fields models.HeaderFields, style models.CommentStyle, width int) []byte {
	width = normalizeWidth(width)
	inner := style.Inner(width)

	var buf bytes.Buffer
	buf.Grow(headerLineCount * (width + 1))

	writeLine := func(text string) {
		if len(text) > inner {
			text = text[:inner]
		}
		buf.WriteString(style.Open)
		buf.WriteString(text)
		buf.WriteString(strings.Repeat(" ", inner-len(text)))
		buf.WriteString(style.Close)
		buf.WriteByte('\n')
	}

	border := style.Open + strings.Repeat(string(style.Filler), inner) + style.Close + "\n"

	buf.WriteString(border)
	writeLine("")
	writeLine(fields.FileName)
	writeLine(byLine(fields.Login, fields.Email))
	writeLine(fmt.Sprintf("Created: %s by %s", fields.CreatedAt.Format(models.TimeLayout), fields.CreatedBy))
	writeLine(fmt.Sprintf("Updated: %s by %s", fields.UpdatedAt.Format(models.TimeLayout), fields.UpdatedBy))
	writeLine("")
	buf.WriteString(border)

	return buf.Bytes()
}

func byLine(login, email string) string {
	if email == "" {
		return "By: " + login
	}
	return fmt.Sprintf("By: %s <%s>", login, email)
}
