// Package clock defines the Clock capability the cpu package notifies of
// elapsed cycles, plus two implementations: a pure counter for tests and
// headless hosts, and a self-calibrating realtime pacer for hosts that want
// the guest program to run at (approximately) its real hardware frequency.
package clock

import (
	"fmt"
	"time"
)

// Clock is the capability the core requires: notification of the total
// cycles a just-completed instruction consumed. Implementations may treat
// this as a pure counter, a busy-wait, or a sleep; the core has no
// expectations beyond "this call returns eventually".
type Clock interface {
	Cycles(n int)
}

// NullClock counts total cycles seen and never blocks. This is the Clock
// to use in tests and in any host that doesn't care about wall-clock
// pacing (e.g. the ProcessorTests fixture runner).
type NullClock struct {
	Total int
}

// Cycles implements Clock.
func (c *NullClock) Cycles(n int) {
	c.Total += n
}

// RealtimeClock paces Cycles calls so the guest program runs at
// approximately the configured frequency. It calibrates itself once at
// construction by measuring how long a tight spin loop takes on this
// machine, the same technique real-hardware-accurate emulators use instead
// of relying on the OS scheduler (which has millisecond-granularity sleeps,
// far coarser than a single 6502 cycle at MHz speeds).
type RealtimeClock struct {
	cyclePeriod time.Duration // Wall time budget per cycle.
	spinCost    time.Duration // Measured average cost of one calibration-loop iteration.
	spinsPerNs  float64
}

// NewRealtimeClock returns a Clock paced to freqHz cycles per second. It
// returns an error if the machine is too slow to reliably pace at the
// requested frequency (the per-cycle budget is smaller than the measured
// overhead of timing itself).
func NewRealtimeClock(freqHz float64) (*RealtimeClock, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("clock: frequency must be positive, got %v", freqHz)
	}
	period := time.Duration(float64(time.Second) / freqHz)
	spin := calibrateSpin()
	if spin >= period {
		return nil, fmt.Errorf("clock: can't pace to %v/cycle, spin-loop overhead measured at %v", period, spin)
	}
	return &RealtimeClock{
		cyclePeriod: period,
		spinCost:    spin,
	}, nil
}

// calibrateSpin measures the average wall time of one time.Now() round
// trip, which stands in for the smallest unit of busy-wait this machine
// can reliably observe.
func calibrateSpin() time.Duration {
	const runs = 200000
	start := time.Now()
	for i := 0; i < runs; i++ {
		_ = time.Now()
	}
	return time.Since(start) / runs
}

// Cycles implements Clock, spin-waiting until n cycles' worth of wall time
// has elapsed since it was called.
func (c *RealtimeClock) Cycles(n int) {
	budget := c.cyclePeriod * time.Duration(n)
	start := time.Now()
	for time.Since(start) < budget {
		// Busy wait: sleeping would oversleep by an OS-scheduler quantum,
		// which at MHz-scale cycle budgets is orders of magnitude too coarse.
	}
}
