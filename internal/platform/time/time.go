// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Clock yields the current instant. Services hold one so tests can pin time
type Clock func() time.Time

// NowUTC is the default Clock; stored timestamps are always UTC
func NowUTC() time.Time {
	return time.Now().UTC()
}
