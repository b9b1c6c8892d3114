package header_engine

import (
	"bytes"
	"strings"
	"time"

	"github.com/headstamp/headstamp/header_engine/models"
)

var absent = models.ParsedHeader{}

// ParseHeader scans the top of a file for a conforming header block in the
// given comment style and extracts its fields. The match is strict: every
// structural line must reproduce the rendered template byte for byte (modulo
// the variable field values and their padding). Any deviation, a foreign
// banner, a different style's delimiters, a ragged width, a truncated file,
// all yield an absent result rather than an error. A leading shebang line is
// skipped, matching where headers are inserted in scripts.
func ParseHeader(content []byte, style models.CommentStyle) models.ParsedHeader {
	offset := 0
	if bytes.HasPrefix(content, []byte("#!")) {
		nl := bytes.IndexByte(content, '\n')
		if nl < 0 {
			return absent
		}
		offset = nl + 1
	}

	rest := content[offset:]
	lines := make([][]byte, 0, headerLineCount)
	pos := 0
	for i := 0; i < headerLineCount; i++ {
		nl := bytes.IndexByte(rest[pos:], '\n')
		if nl < 0 {
			return absent
		}
		lines = append(lines, rest[pos:pos+nl])
		pos += nl + 1
	}

	width := len(lines[0])
	inner := style.Inner(width)
	if width < MinWidth || inner <= 0 {
		return absent
	}

	border := []byte(style.Open + strings.Repeat(string(style.Filler), inner) + style.Close)
	if !bytes.Equal(lines[0], border) || !bytes.Equal(lines[headerLineCount-1], border) {
		return absent
	}

	body := func(line []byte) (string, bool) {
		if len(line) != width ||
			!bytes.HasPrefix(line, []byte(style.Open)) ||
			!bytes.HasSuffix(line, []byte(style.Close)) {
			return "", false
		}
		mid := string(line[len(style.Open) : width-len(style.Close)])
		return strings.TrimRight(mid, " "), true
	}

	for _, i := range []int{1, 6} {
		if text, ok := body(lines[i]); !ok || text != "" {
			return absent
		}
	}

	fileName, ok := body(lines[2])
	if !ok || fileName == "" {
		return absent
	}

	byBody, ok := body(lines[3])
	if !ok {
		return absent
	}
	login, email, ok := parseByLine(byBody)
	if !ok {
		return absent
	}

	createdAt, createdBy, ok := parseStampLine(lines[4], "Created: ", body)
	if !ok {
		return absent
	}
	updatedAt, updatedBy, ok := parseStampLine(lines[5], "Updated: ", body)
	if !ok {
		return absent
	}

	return models.ParsedHeader{
		Present: true,
		Fields: models.HeaderFields{
			FileName:  fileName,
			Login:     login,
			Email:     email,
			CreatedAt: createdAt,
			CreatedBy: createdBy,
			UpdatedAt: updatedAt,
			UpdatedBy: updatedBy,
		},
		Span:  models.Span{Start: offset, End: offset + pos},
		Width: width,
	}
}

func parseByLine(body string) (login, email string, ok bool) {
	rest, found := strings.CutPrefix(body, "By: ")
	if !found || rest == "" {
		return "", "", false
	}
	if strings.HasSuffix(rest, ">") {
		if i := strings.LastIndex(rest, " <"); i > 0 {
			return rest[:i], rest[i+2 : len(rest)-1], true
		}
		return "", "", false
	}
	return rest, "", true
}

func parseStampLine(line []byte, label string, body func([]byte) (string, bool)) (time.Time, string, bool) {
	text, ok := body(line)
	if !ok {
		return time.Time{}, "", false
	}
	rest, found := strings.CutPrefix(text, label)
	if !found || len(rest) < len(models.TimeLayout)+len(" by ")+1 {
		return time.Time{}, "", false
	}
	stamp, err := time.ParseInLocation(models.TimeLayout, rest[:len(models.TimeLayout)], time.Local)
	if err != nil {
		return time.Time{}, "", false
	}
	rest = rest[len(models.TimeLayout):]
	name, found := strings.CutPrefix(rest, " by ")
	if !found || name == "" {
		return time.Time{}, "", false
	}
	return stamp, name, true
}
