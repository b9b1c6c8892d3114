package cmd

import (
	"testing"
	"time"

	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/stretchr/testify/assert"
)

func testResult(kind models.OutcomeKind) models.FileResult {
	created := time.Date(2024, time.March, 4, 9, 15, 0, 0, time.Local)
	updated := time.Date(2024, time.March, 4, 16, 45, 30, 0, time.Local)
	return models.FileResult{
		RelativePath: "src/foo.c",
		Outcome: models.RewriteOutcome{
			Kind: kind,
			NewFields: &models.HeaderFields{
				FileName:  "foo.c",
				CreatedAt: created,
				UpdatedAt: updated,
			},
		},
		NewHash: 0xdeadbeefcafe,
	}
}

func TestOutcomeLine_Labels(t *testing.T) {
	assert.Contains(t, outcomeLine(testResult(models.OutcomeUpdated), false), "UPDATED: src/foo.c")
	assert.Contains(t, outcomeLine(testResult(models.OutcomeInserted), false), "INSERTED: src/foo.c")
	assert.Contains(t, outcomeLine(testResult(models.OutcomeUpdated), true), "WOULD UPDATE: src/foo.c")
	assert.Contains(t, outcomeLine(testResult(models.OutcomeInserted), true), "WOULD INSERT: src/foo.c")
}

func TestOutcomeLine_StampsAndFingerprint(t *testing.T) {
	line := outcomeLine(testResult(models.OutcomeUpdated), false)

	assert.Contains(t, line, "[Mon Mar 04 09:15:00 2024 -> Mon Mar 04 16:45:30 2024]")
	assert.Contains(t, line, "(0000deadbeefcafe)")
}
