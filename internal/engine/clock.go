package engine

// Clock is the monotonic simulation-time accumulator, in seconds.
// It only ever moves forward; the driver advances it to each popped
// event's timestamp.
type Clock struct {
	now float64
}

func (c *Clock) Now() float64 {
	return c.now
}

// AdvanceTo moves the clock forward to t and returns the elapsed
// interval. A t in the past is a no-op: monotonicity holds by
// construction, stale callers simply observe zero elapsed time.
func (c *Clock) AdvanceTo(t float64) float64 {
	if t <= c.now {
		return 0
	}
	elapsed := t - c.now
	c.now = t
	return elapsed
}
