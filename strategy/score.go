package strategy

import "sort"

// estimatedSuccessFloor/estimatedSuccessCeiling are the contractual clamp
// bounds for estimatedSuccess.
const (
	estimatedSuccessFloor   = 0.1
	estimatedSuccessCeiling = 0.95
)

// toolCoverage is the fraction of a strategy's required tools that are
// available; Filter already guarantees this is 1.0 for surviving
// strategies, but estimatedSuccess still names it as its own factor
// , so it is computed explicitly rather than hardcoded.
func toolCoverage(s Strategy, available map[string]bool) float64 {
	if len(s.RequiredTools) == 0 {
		return 1.0
	}
	have := 0
	for _, tool := range s.RequiredTools {
		if available[tool] {
			have++
		}
	}
	return float64(have) / float64(len(s.RequiredTools))
}

// genomeMatch implements `sum(min(1, actual/min) * min) / sum(min)` over a
// strategy's gene requirements.
func genomeMatch(s Strategy, ctx Context) float64 {
	if len(s.GeneRequirements) == 0 {
		return 1.0
	}
	var numerator, denominator float64
	for _, req := range s.GeneRequirements {
		if req.Min <= 0 {
			continue
		}
		actual := traitValue(ctx.Expressed, req.TraitName)
		ratio := actual / req.Min
		if ratio > 1 {
			ratio = 1
		}
		numerator += ratio * req.Min
		denominator += req.Min
	}
	if denominator == 0 {
		return 1.0
	}
	return numerator / denominator
}

// estimatedSuccess implements the contractual success formula,
// clamped to [0.1, 0.95].
func estimatedSuccess(s Strategy, ctx Context, match float64) float64 {
	v := 0.6*match*(1-ctx.MarketRisk*0.3)*toolCoverage(s, ctx.AvailableTools) + ctx.ExperienceBonus
	if v < estimatedSuccessFloor {
		return estimatedSuccessFloor
	}
	if v > estimatedSuccessCeiling {
		return estimatedSuccessCeiling
	}
	return v
}

// categoryUrgency implements the category-specific urgency term:
// inverse of runway days for survival strategies, active only when
// deceptions have occurred for defense, and only once the agent has been
// thriving for over a week for reproduction. Other categories carry no
// urgency boost.
func categoryUrgency(s Strategy, ctx Context) float64 {
	switch s.Category {
	case CategorySurvival:
		if ctx.RunwayDays <= 0 {
			return 1.0
		}
		return 1.0 / ctx.RunwayDays
	case CategoryDefense:
		if ctx.RecentDeceptionCount > 0 {
			return ctx.RecentDeceptionCount
		}
		return 0
	case CategoryReproduction:
		if ctx.DaysThriving > 7 {
			return ctx.DaysThriving - 7
		}
		return 0
	default:
		return 0
	}
}

// riskDiscount scales priority down for riskier strategies; a strategy at
// risk=0 is undiscounted, risk=1 halves priority.
func riskDiscount(s Strategy) float64 {
	return 1 - 0.5*s.Risk
}

// priority combines genome match, estimated success, category urgency,
// typical payoff, and a risk discount into the single ranking
// score. The exact linear combination is this
// implementation's choice (the contract names the ingredients, not their
// weights); genomeMatch and estimatedSuccess dominate, urgency and payoff
// add a bounded bonus, and the risk discount scales the whole score down.
func priority(s Strategy, ctx Context, match, success float64) float64 {
	base := 0.5*match + 0.3*success
	base += 0.1 * categoryUrgency(s, ctx)
	base += 0.1 * normalizedPayoff(s.TypicalPayoff)
	return base * riskDiscount(s)
}

// normalizedPayoff squashes an unbounded stable-unit payoff into [-1,1] via
// a simple saturating ratio, so a single large payoff cannot dominate the
// genome-match/success terms in priority.
func normalizedPayoff(payoff float64) float64 {
	const scale = 1.0
	return payoff / (scale + absFloat(payoff))
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Rank computes Candidate scores for every strategy in surviving and
// returns them sorted by descending priority.
func Rank(surviving []Strategy, ctx Context) []Candidate {
	candidates := make([]Candidate, 0, len(surviving))
	for _, s := range surviving {
		match := genomeMatch(s, ctx)
		success := estimatedSuccess(s, ctx, match)
		candidates = append(candidates, Candidate{
			Strategy:         s,
			GenomeMatch:      match,
			EstimatedSuccess: success,
			Priority:         priority(s, ctx, match, success),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})
	return candidates
}
