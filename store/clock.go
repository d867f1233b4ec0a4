package store

import "time"

// nowUTC is the store's single source of "now": all persisted timestamps
// are UTC (spec §2 Clock) so that lexicographic and chronological string
// comparison agree.
func nowUTC() time.Time {
	return time.Now().UTC()
}
