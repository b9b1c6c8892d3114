package header_engine

import (
	"math/rand"
	"time"

	"github.com/headstamp/headstamp/header_engine/models"
)

// TimelinePlan controls how creation and update stamps are spread across the
// run's calendar day when inserting headers into many files at once.
type TimelinePlan struct {
	GapMin  int   // seconds between consecutive files, lower bound
	GapMax  int   // seconds between consecutive files, upper bound
	WorkMin int   // seconds between Created and Updated, lower bound
	WorkMax int   // seconds between Created and Updated, upper bound
	Seed    int64 // 0 derives the seed from now, truncated to seconds
}

// DefaultTimelinePlan spaces files one to two minutes apart with three to six
// minutes of work each.
var DefaultTimelinePlan = TimelinePlan{
	GapMin:  60,
	GapMax:  120,
	WorkMin: 180,
	WorkMax: 360,
}

// PlanTimeline assigns a (created, updated) stamp pair to each of n files.
// All stamps fall on now's calendar day, consecutive files are separated by a
// gap within the plan's bounds, and each file's updated stamp follows its
// created stamp by a work span within the plan's bounds. The timeline is
// anchored at now but pulled back so that the whole plan fits before the end
// of the day. With the default seed the plan is deterministic for any given
// second, so an immediate re-run reproduces the same stamps.
func PlanTimeline(n int, now time.Time, plan TimelinePlan) []models.Stamp {
	if n == 0 {
		return nil
	}

	now = now.Truncate(time.Second)
	seed := plan.Seed
	if seed == 0 {
		seed = now.Unix()
	}
	rng := rand.New(rand.NewSource(seed))

	pick := func(min, max int) int {
		if max <= min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}

	gaps := make([]int, 0, n)
	for i := 0; i < n-1; i++ {
		gaps = append(gaps, pick(plan.GapMin, plan.GapMax))
	}
	works := make([]int, 0, n)
	for i := 0; i < n; i++ {
		works = append(works, pick(plan.WorkMin, plan.WorkMax))
	}

	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Second)

	totalSpan := works[n-1]
	for _, g := range gaps {
		totalSpan += g
	}

	base := now
	if latest := endOfDay.Add(-time.Duration(totalSpan) * time.Second); latest.Before(base) {
		base = latest
	}
	if base.Before(startOfDay) {
		base = startOfDay.Add(time.Second)
	}

	stamps := make([]models.Stamp, 0, n)
	t := base
	for i := 0; i < n; i++ {
		created := t
		updated := created.Add(time.Duration(works[i]) * time.Second)
		if updated.After(endOfDay) {
			updated = endOfDay
		}
		if created.Before(startOfDay) {
			created = startOfDay
		}
		stamps = append(stamps, models.Stamp{Created: created, Updated: updated})
		if i < n-1 {
			t = t.Add(time.Duration(gaps[i]) * time.Second)
		}
	}
	return stamps
}

// FixedTimeline stamps every file with the same instant. Used when the
// caller disables the spread-out plan.
func FixedTimeline(n int, now time.Time) []models.Stamp {
	now = now.Truncate(time.Second)
	stamps := make([]models.Stamp, 0, n)
	for i := 0; i < n; i++ {
		stamps = append(stamps, models.Stamp{Created: now, Updated: now})
	}
	return stamps
}
