package main

import (
	"time"

	"github.com/coder/quartz"
)

// clock is the time source used for elapsed-time reporting. Tests substitute
// quartz.NewMock(t) so timing assertions never depend on wall-clock
// scheduling jitter.
var clock quartz.Clock = quartz.NewReal()

// timed runs fn and reports how long it took according to clock.
func timed(fn func() error) (time.Duration, error) {
	start := clock.Now()
	err := fn()
	return clock.Now().Sub(start), err
}
