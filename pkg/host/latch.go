package host

// Latch turns key press events into held key states. Terminals report
// presses but no releases, so a pressed key stays down for a fixed number
// of steps after its last press.
type Latch struct {
	hold      int
	remaining [16]int
}

// NewLatch creates a latch holding each press for hold steps.
func NewLatch(hold int) *Latch {
	if hold < 1 {
		hold = 1
	}
	return &Latch{hold: hold}
}

// Press marks key k down, restarting its hold period.
func (l *Latch) Press(k int) {
	if k < 0 || k >= len(l.remaining) {
		return
	}
	l.remaining[k] = l.hold
}

// Tick returns the keys held for the coming step and ages every hold by one.
func (l *Latch) Tick() [16]bool {
	var keys [16]bool
	for k, n := range l.remaining {
		if n > 0 {
			keys[k] = true
			l.remaining[k] = n - 1
		}
	}
	return keys
}
