package header_engine

import (
	"time"

	"github.com/headstamp/headstamp/header_engine/models"
)

// DecideFields computes the field set to render for one file. When existing
// is nil the file gets a fresh header from the stamp; otherwise the creation
// fields are carried over untouched and only the update fields move. The
// file name is always recomputed from the current path, never trusted from a
// stale header. All timestamps are truncated to seconds, the granularity of
// the header grammar, which keeps repeated runs within the same second
// byte-stable.
func DecideFields(existing *models.HeaderFields, fileName string, stamp models.Stamp, identity models.Identity, clampSameDay bool) models.HeaderFields {
	fields := models.HeaderFields{
		FileName: fileName,
		Login:    identity.Name,
		Email:    identity.Email,
	}

	if existing == nil {
		fields.CreatedAt = stamp.Created.Truncate(time.Second)
		fields.CreatedBy = identity.Name
		fields.UpdatedAt = stamp.Updated.Truncate(time.Second)
		fields.UpdatedBy = identity.Name
		if fields.UpdatedAt.Before(fields.CreatedAt) {
			fields.UpdatedAt = fields.CreatedAt
		}
		return fields
	}

	fields.CreatedAt = existing.CreatedAt.Truncate(time.Second)
	fields.CreatedBy = existing.CreatedBy
	fields.UpdatedAt = stamp.Updated.Truncate(time.Second)
	fields.UpdatedBy = identity.Name

	// Same-day realism: an update stamped on the creation date never
	// precedes the creation time, even under clock skew.
	if clampSameDay && sameDay(fields.UpdatedAt, fields.CreatedAt) && fields.UpdatedAt.Before(fields.CreatedAt) {
		fields.UpdatedAt = fields.CreatedAt
	}

	return fields
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
