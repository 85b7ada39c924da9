package survival

import (
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/ports"
)

// deriveMode applies the contractual balance thresholds. The gas
// surrogate (native-token balance) can force emergency independently of the
// stable-token tier.
func deriveMode(b ports.Balances) envstate.Mode {
	switch {
	case b.Stable < HibernationThreshold:
		return envstate.ModeHibernation
	case b.Stable < EmergencyThreshold:
		return envstate.ModeEmergency
	case b.Native < GasEmergencyFloor:
		return envstate.ModeEmergency
	case b.Stable < LowPowerThreshold:
		return envstate.ModeLowPower
	default:
		return envstate.ModeNormal
	}
}
