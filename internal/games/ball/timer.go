package ball

import (
	"fmt"
	"math"
	"time"
)

// TimerPolicy decides what a repeating timer does with the time left over
// when it fires.
type TimerPolicy int

const (
	// PolicyCarry fires once per whole period crossed and keeps the remainder.
	PolicyCarry TimerPolicy = iota
	// PolicyReset fires at most once per tick and zeroes the accumulator.
	PolicyReset
)

// String returns the config name of the policy.
func (p TimerPolicy) String() string {
	switch p {
	case PolicyCarry:
		return "carry"
	case PolicyReset:
		return "reset"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseTimerPolicy converts a config value into a TimerPolicy.
// The empty string selects PolicyCarry.
func ParseTimerPolicy(s string) (TimerPolicy, error) {
	switch s {
	case "", "carry":
		return PolicyCarry, nil
	case "reset":
		return PolicyReset, nil
	default:
		return 0, fmt.Errorf("ball: unknown timer policy %q", s)
	}
}

// SpawnTimer is a repeating timer. It counts whole nanoseconds, so ticks
// that add up to one period always fire.
type SpawnTimer struct {
	Period  time.Duration
	Elapsed time.Duration
	Policy  TimerPolicy
}

// NewSpawnTimer creates a timer with an empty accumulator.
// Panics if period is not positive.
func NewSpawnTimer(period time.Duration, policy TimerPolicy) SpawnTimer {
	if period <= 0 {
		panic(fmt.Sprintf("ball: timer period must be positive, got %v", period))
	}
	return SpawnTimer{Period: period, Policy: policy}
}

// Tick advances the timer by dt and returns how many times it fired.
func (t *SpawnTimer) Tick(dt time.Duration) int {
	if dt > math.MaxInt64-t.Elapsed {
		t.Elapsed = math.MaxInt64
	} else {
		t.Elapsed += dt
	}
	if t.Elapsed < t.Period {
		return 0
	}

	if t.Policy == PolicyReset {
		t.Elapsed = 0
		return 1
	}

	fired := int(t.Elapsed / t.Period)
	t.Elapsed %= t.Period
	return fired
}

// seconds converts a finite, non-negative number of seconds to a Duration,
// rounded to the nearest nanosecond and saturated at the largest Duration.
func seconds(s float64) time.Duration {
	ns := math.Round(s * float64(time.Second))
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}
