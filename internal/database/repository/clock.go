package repository

import "time"

// CanonicalFormat is the only date form the store persists. It is
// zero-padded and lexicographically sortable, which is what makes
// prefix-based month filtering and date ordering correct.
const CanonicalFormat = "2006-01-02 15:04:05"

// MonthFormat is the year-month prefix of CanonicalFormat.
const MonthFormat = "2006-01"

// Now returns the current local time in canonical form.
func Now() string {
	return time.Now().Format(CanonicalFormat)
}

// CurrentMonth returns the current local year-month prefix.
func CurrentMonth() string {
	return time.Now().Format(MonthFormat)
}
