package shift

import (
	"time"

	"github.com/subnudge/subnudge/internal/subtitle"
)

// Delta is the uniform offset that moves the anchor entry's start to the
// target time.
func Delta(target, anchorStart time.Duration) time.Duration {
	return target - anchorStart
}

// Apply adds delta to every entry's start and end in place. An entry whose
// shifted start would land before zero is pinned to zero with its original
// duration preserved, so no inverted interval is ever produced. Returns the
// number of entries that were clamped.
func Apply(entries []subtitle.Entry, delta time.Duration) int {
	clamped := 0
	for i := range entries {
		entry := &entries[i]

		newStart := entry.Start + delta
		newEnd := entry.End + delta
		if newStart < 0 {
			newEnd = entry.Duration()
			newStart = 0
			clamped++
		}
		if newEnd < 0 {
			newEnd = 0
		}

		entry.Start = newStart
		entry.End = newEnd
	}
	return clamped
}
