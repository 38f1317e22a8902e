package looplet

// A Yield is a [Computation] used inside a larger computation to create
// one cooperative suspension boundary, so that an [Executor] can
// interleave other tasks at that point.
//
// An armed Yield reports suspension on its first poll and completes on
// the very next one, never reporting two suspensions in a row for the
// same arming. Completing re-arms it, so a single Yield embedded in a
// state machine provides a fresh suspension boundary every time control
// reaches it again, for example once per loop iteration.
//
// The zero Yield is armed and ready to use.
type Yield struct {
	suspended bool
}

// Poll advances y.
func (y *Yield) Poll() Result[Unit] {
	if y.suspended {
		y.suspended = false
		return Completed(Unit{})
	}
	y.suspended = true
	return Suspended[Unit]()
}
