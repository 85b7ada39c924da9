package survival

import "time"

// Cycle interval thresholds on the cycle_speed gene's raw value, and the
// interval each band resolves to.
const (
	cycleSpeedFastFloor = 0.7
	cycleSpeedSlowCeil  = 0.3

	FastCycleInterval    = 5 * time.Minute
	DefaultCycleInterval = 10 * time.Minute
	SlowCycleInterval    = 30 * time.Minute
)

// cycleSpeedGeneID is the seed gene the cycle interval is read
// from.
const cycleSpeedGeneID = "meta.cycle_speed"

// cycleInterval reads the cycle_speed gene's stored value directly (not its
// environment-modulated expressed value), since the interval must be known
// before a tick — and thus before an expression pass — can run.
func (a *Agent) cycleInterval() time.Duration {
	a.mu.Lock()
	g, ok := a.Genome.FindGene(cycleSpeedGeneID)
	a.mu.Unlock()
	if !ok {
		return DefaultCycleInterval
	}
	switch {
	case g.Value > cycleSpeedFastFloor:
		return FastCycleInterval
	case g.Value < cycleSpeedSlowCeil:
		return SlowCycleInterval
	default:
		return DefaultCycleInterval
	}
}

// nextDailyBoundary returns the duration until the next 00:00 UTC after now.
func nextDailyBoundary(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(now)
}
