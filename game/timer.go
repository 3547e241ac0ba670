package game

import "time"

// Timer is a one-shot deferred task on the frame clock. It is armed by the
// step that schedules it and fired by whoever polls it, so it keeps working
// after the frame loop has stopped stepping.
type Timer struct {
	due   time.Duration
	armed bool
	fired bool
}

// Arm schedules the timer delay after now. A timer that is already armed or
// has fired is left untouched and Arm reports false.
func (t *Timer) Arm(now, delay time.Duration) bool {
	if t.armed || t.fired {
		return false
	}
	t.due = now + delay
	t.armed = true
	return true
}

// Poll fires the timer if it is due. It reports true exactly once.
func (t *Timer) Poll(now time.Duration) bool {
	if !t.armed || now < t.due {
		return false
	}
	t.armed = false
	t.fired = true
	return true
}

// Cancel disarms the timer and forgets that it ever fired
func (t *Timer) Cancel() {
	*t = Timer{}
}

// Pending reports whether the timer is armed and has not fired yet
func (t *Timer) Pending() bool {
	return t.armed
}

// Due returns when an armed timer will fire
func (t *Timer) Due() time.Duration {
	return t.due
}
