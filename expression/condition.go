package expression

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/axobase/egde/envstate"
)

// ErrInvalidCondition is the symbolic InvalidCondition warning kind from
// non-fatal; the condition is treated as true.
type ErrInvalidCondition struct {
	Condition string
}

func (e *ErrInvalidCondition) Error() string {
	return "invalid activation condition: " + e.Condition
}

var conditionPattern = regexp.MustCompile(`^\s*(\w+)\s*(>=|<=|>|<|=)\s*([\w.\-]+)\s*$`)

var modeWords = map[string]float64{
	string(envstate.ModeNormal):      0,
	string(envstate.ModeLowPower):    1,
	string(envstate.ModeEmergency):   2,
	string(envstate.ModeHibernation): 3,
}

func modeRank(m envstate.Mode) float64 {
	return modeWords[string(m)]
}

// evaluateCondition evaluates a tiny total language over identifiers
// {balance, starving, thriving, mode}, operators {>,<,>=,<=,=}, and literal
// numbers or mode words. Unknown identifiers evaluate to true
// (conservative). A condition that fails to parse also evaluates to true,
// and reports ok=false so the caller can attach a non-fatal
// ErrInvalidCondition.
func evaluateCondition(cond string, env envstate.State) (result bool, ok bool) {
	if strings.TrimSpace(cond) == "" {
		return true, true
	}
	m := conditionPattern.FindStringSubmatch(cond)
	if m == nil {
		return true, false
	}
	ident, op, rhs := strings.ToLower(m[1]), m[2], m[3]

	var lhs float64
	switch ident {
	case "balance":
		lhs = env.Balance
	case "starving":
		lhs = env.DaysStarving
	case "thriving":
		lhs = env.DaysThriving
	case "mode":
		lhs = modeRank(env.Mode)
	default:
		// Unknown identifier: conservative true.
		return true, true
	}

	var rhsVal float64
	if rank, isMode := modeWords[strings.ToLower(rhs)]; isMode && ident == "mode" {
		rhsVal = rank
	} else {
		v, err := strconv.ParseFloat(rhs, 64)
		if err != nil {
			return true, false
		}
		rhsVal = v
	}

	switch op {
	case ">":
		return lhs > rhsVal, true
	case "<":
		return lhs < rhsVal, true
	case ">=":
		return lhs >= rhsVal, true
	case "<=":
		return lhs <= rhsVal, true
	case "=":
		return lhs == rhsVal, true
	default:
		return true, false
	}
}
