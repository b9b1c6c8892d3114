package header_engine

import (
	"strings"
	"testing"

	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFieldsEqual(t *testing.T, want, got models.HeaderFields) {
	t.Helper()
	assert.Equal(t, want.FileName, got.FileName)
	assert.Equal(t, want.Login, got.Login)
	assert.Equal(t, want.Email, got.Email)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "CreatedAt: want %v, got %v", want.CreatedAt, got.CreatedAt)
	assert.Equal(t, want.CreatedBy, got.CreatedBy)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt: want %v, got %v", want.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, want.UpdatedBy, got.UpdatedBy)
}

func TestParseHeader_RoundTrip(t *testing.T) {
	// Rendering then parsing must recover the exact field set for every
	// supported style.
	fields := testFields()
	for _, ext := range SupportedExtensions() {
		style, _ := ResolveStyle(ext)
		rendered := RenderHeader(fields, style, 80)

		parsed := ParseHeader(rendered, style)
		require.True(t, parsed.Present, "style %s", style.Name)
		assertFieldsEqual(t, fields, parsed.Fields)
		assert.Equal(t, models.Span{Start: 0, End: len(rendered)}, parsed.Span, "style %s", style.Name)
		assert.Equal(t, 80, parsed.Width)
	}
}

func TestParseHeader_RoundTripNoEmail(t *testing.T) {
	fields := testFields()
	fields.Email = ""

	rendered := RenderHeader(fields, StyleSlash, 80)
	parsed := ParseHeader(rendered, StyleSlash)
	require.True(t, parsed.Present)
	assertFieldsEqual(t, fields, parsed.Fields)
}

func TestParseHeader_WithTrailingContent(t *testing.T) {
	rendered := RenderHeader(testFields(), StyleCBlock, 80)
	content := append(append([]byte{}, rendered...), []byte("\nint main(void)\n{\n\treturn (0);\n}\n")...)

	parsed := ParseHeader(content, StyleCBlock)
	require.True(t, parsed.Present)
	assert.Equal(t, models.Span{Start: 0, End: len(rendered)}, parsed.Span)
}

func TestParseHeader_AfterShebang(t *testing.T) {
	shebang := "#!/usr/bin/env python3\n"
	rendered := RenderHeader(testFields(), StyleHash, 80)
	content := append([]byte(shebang), rendered...)
	content = append(content, []byte("\nprint('hi')\n")...)

	parsed := ParseHeader(content, StyleHash)
	require.True(t, parsed.Present)
	assert.Equal(t, len(shebang), parsed.Span.Start)
	assert.Equal(t, len(shebang)+len(rendered), parsed.Span.End)
}

func TestParseHeader_Absent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"plain source", "int main(void)\n{\n\treturn (0);\n}\n"},
		{"shebang only", "#!/bin/sh"},
		{"ordinary comment", "/* this is just a comment */\nint x;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseHeader([]byte(tt.content), StyleCBlock)
			assert.False(t, parsed.Present)
		})
	}
}

func TestParseHeader_RejectsForeignStyle(t *testing.T) {
	// A hash-style header at the top of a C file must never match.
	rendered := RenderHeader(testFields(), StyleHash, 80)
	parsed := ParseHeader(rendered, StyleCBlock)
	assert.False(t, parsed.Present)
}

func TestParseHeader_RejectsNearMisses(t *testing.T) {
	rendered := string(RenderHeader(testFields(), StyleCBlock, 80))
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")

	mutate := func(mutator func([]string) []string) []byte {
		copied := append([]string{}, lines...)
		return []byte(strings.Join(mutator(copied), "\n") + "\n")
	}

	tests := []struct {
		name    string
		content []byte
	}{
		{
			"ragged width",
			mutate(func(ls []string) []string {
				ls[2] = ls[2][:len(ls[2])-4] + " */"
				return ls
			}),
		},
		{
			"missing field row",
			mutate(func(ls []string) []string {
				return append(ls[:4], ls[5:]...)
			}),
		},
		{
			"mangled label",
			mutate(func(ls []string) []string {
				ls[4] = strings.Replace(ls[4], "Created:", "Xreated:", 1)
				return ls
			}),
		},
		{
			"garbage timestamp",
			mutate(func(ls []string) []string {
				ls[5] = strings.Replace(ls[5], "Jan", "Foo", 1)
				return ls
			}),
		},
		{
			"truncated block",
			[]byte(strings.Join(lines[:5], "\n") + "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseHeader(tt.content, StyleCBlock)
			assert.False(t, parsed.Present)
		})
	}
}

func TestParseHeader_DetectsNonDefaultWidth(t *testing.T) {
	rendered := RenderHeader(testFields(), StyleCBlock, 100)
	parsed := ParseHeader(rendered, StyleCBlock)
	require.True(t, parsed.Present)
	assert.Equal(t, 100, parsed.Width)
}
