// Package timing provides the simulation-time counter that orders every
// evaluation of a clocked core.
package timing

// VTime is a point in simulated time, counted in abstract time units.
//
// The reference timing scheme advances by HalfPeriod units per clock edge, so
// a full clock cycle takes 2*HalfPeriod units.
type VTime = uint64

// HalfPeriod is the number of time units between two consecutive clock edges.
const HalfPeriod VTime = 5

// TimeTeller can be used to get the current time. Components that only read
// the time of a run hold a TimeTeller rather than the Clock that advances it.
type TimeTeller interface {
	Now() VTime
}

// A Clock is a monotonic time counter. The zero value is not usable; create
// clocks with NewClock.
type Clock struct {
	now  VTime
	step VTime
}

// NewClock creates a clock that starts at time 0 and moves forward by step
// units on every Advance.
func NewClock(step VTime) *Clock {
	if step == 0 {
		panic("clock step cannot be 0")
	}

	return &Clock{step: step}
}

// Now returns the current time.
func (c *Clock) Now() VTime {
	return c.now
}

// Advance moves the clock forward by one step and returns the new time.
func (c *Clock) Advance() VTime {
	next := c.now + c.step
	if next < c.now {
		panic("simulation time overflow")
	}

	c.now = next

	return c.now
}

// Cycles converts a duration in time units into full clock cycles.
func (c *Clock) Cycles(d VTime) uint64 {
	return d / (2 * c.step)
}
