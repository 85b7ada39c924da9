package strategy

import (
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
)

// geneRequirementTolerance is the 20% slack the gene gate grants a
// gene requirement: a trait at 80% of its stated minimum still passes.
const geneRequirementTolerance = 0.8

// resourceCheckRunwayDays and longHorizonRunwayFloor/mediumHorizonRunwayFloor
// are the resource check's runway-in-days floors.
const (
	resourceCheckRunwayDays  = 7.0
	longHorizonRunwayFloor   = 14.0
	mediumHorizonRunwayFloor = 7.0
)

// socialOrientationFloor is stage 7's social-strategy gate.
const socialOrientationFloor = 0.3

// Filter implements the 7-stage filter pipeline, returning the
// strategies from the catalogue that survive every stage for ctx.
func Filter(catalogue []Strategy, ctx Context) []Strategy {
	riskTolerance := RiskTolerance(ctx.Expressed)
	complexityTolerance := ComplexityTolerance(ctx.Expressed)
	socialOrientation := SocialOrientation(ctx.Expressed)

	var surviving []Strategy
	for _, s := range catalogue {
		if !meetsGeneRequirements(s, ctx.Expressed) {
			continue
		}
		if !hasRequiredTools(s, ctx.AvailableTools) {
			continue
		}
		if s.Risk > 1.5*riskTolerance {
			continue
		}
		if s.Complexity > complexityTolerance {
			continue
		}
		if !passesResourceCheck(s, ctx) {
			continue
		}
		if !passesEmergencyOverride(s, ctx) {
			continue
		}
		if s.Category == CategorySocial && socialOrientation < socialOrientationFloor {
			continue
		}
		surviving = append(surviving, s)
	}
	return surviving
}

func meetsGeneRequirements(s Strategy, expressed expression.ExpressedGenome) bool {
	for _, req := range s.GeneRequirements {
		if traitValue(expressed, req.TraitName) < req.Min*geneRequirementTolerance {
			return false
		}
	}
	return true
}

func hasRequiredTools(s Strategy, available map[string]bool) bool {
	for _, tool := range s.RequiredTools {
		if !available[tool] {
			return false
		}
	}
	return true
}

func passesResourceCheck(s Strategy, ctx Context) bool {
	if s.Category != CategorySurvival {
		balanceAfter := ctx.Balance + s.TypicalPayoff
		floor := resourceCheckRunwayDays * ctx.TotalMetabolicCost
		if balanceAfter < floor {
			return false
		}
	}
	if s.Horizon == HorizonLong && ctx.RunwayDays < longHorizonRunwayFloor {
		return false
	}
	if s.Horizon == HorizonMedium && ctx.RunwayDays < mediumHorizonRunwayFloor {
		return false
	}
	return true
}

func passesEmergencyOverride(s Strategy, ctx Context) bool {
	if ctx.Mode != envstate.ModeEmergency {
		return true
	}
	if s.Category == CategorySurvival {
		return true
	}
	if s.Category == CategoryDefense && s.Risk <= 0.3 {
		return true
	}
	return false
}
