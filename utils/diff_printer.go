package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContextLines is how many unchanged lines are kept around each change.
const diffContextLines = 3

// UnifiedDiff builds a unified-style line diff between the old and new
// content of one file. Returns an empty string when the contents are equal.
func UnifiedDiff(path string, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lineArray)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("--- a/%s\n", path))
	sb.WriteString(fmt.Sprintf("+++ b/%s\n", path))

	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&sb, "-", lines)
		case diffmatchpatch.DiffInsert:
			writeLines(&sb, "+", lines)
		case diffmatchpatch.DiffEqual:
			lines = trimContext(lines, i == 0, i == len(diffs)-1)
			writeLines(&sb, " ", lines)
		}
	}
	return sb.String()
}

// PrintDiff writes a diff to w, syntax-highlighted when colorize is set. On
// highlighting failure it falls back to the plain text.
func PrintDiff(w io.Writer, diffText string, theme string, colorize bool) {
	if diffText == "" {
		return
	}
	if colorize {
		if err := quick.Highlight(w, diffText, "diff", "terminal256", theme); err == nil {
			return
		}
	}
	fmt.Fprint(w, diffText)
}

func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// trimContext shortens a run of unchanged lines to a few lines of context on
// the sides that touch a change, eliding the middle.
func trimContext(lines []string, first, last bool) []string {
	keepHead := diffContextLines
	keepTail := diffContextLines
	if first {
		keepHead = 0
	}
	if last {
		keepTail = 0
	}
	if len(lines) <= keepHead+keepTail+1 {
		return lines
	}

	trimmed := make([]string, 0, keepHead+keepTail+1)
	if first {
		trimmed = append(trimmed, "...\n")
	} else {
		trimmed = append(trimmed, lines[:keepHead]...)
		trimmed = append(trimmed, "...\n")
	}
	if !last {
		trimmed = append(trimmed, lines[len(lines)-keepTail:]...)
	}
	return trimmed
}

func writeLines(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			sb.WriteString("\n")
		}
	}
}
