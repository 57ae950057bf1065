// Package host contains the plumbing shared by the desktop, console and
// headless front ends: keyboard mapping, key latching for terminals,
// text rendering of the display and step pacing.
package host

import "time"

// KeyForRune maps the host keys 0-9 and A-F (either case) to keypad indices.
func KeyForRune(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// Interval returns the time between two steps at tps steps per second.
func Interval(tps int) time.Duration {
	if tps < 1 {
		tps = 1
	}
	return time.Second / time.Duration(tps)
}
