package expression

import "github.com/axobase/egde/genome"

// Stage is the agent's developmental stage, derived from age in days.
type Stage string

const (
	StageNeonate   Stage = "neonate"
	StageJuvenile  Stage = "juvenile"
	StageAdult     Stage = "adult"
	StageSenescent Stage = "senescent"
)

// StageForAge maps an agent's age in days to its developmental stage:
// neonate [0,7), juvenile [7,30), adult [30,90), senescent [90,inf).
func StageForAge(ageDays float64) Stage {
	switch {
	case ageDays < 7:
		return StageNeonate
	case ageDays < 30:
		return StageJuvenile
	case ageDays < 90:
		return StageAdult
	default:
		return StageSenescent
	}
}

// domainMultiplier and geneNameMultiplier encode the fixed per-stage
// multipliers developmental modulation defines. A domain or gene name absent from a
// stage's map gets the neutral multiplier of 1.0.
var domainMultiplier = map[Stage]map[genome.Domain]float64{
	StageNeonate: {
		genome.DomainLearning:    1.3,
		genome.DomainCooperation: 1.2,
		genome.DomainMetabolism:  0.7,
	},
	StageJuvenile: {
		genome.DomainAdaptation:     1.3,
		genome.DomainNoveltySeeking: 1.3,
		genome.DomainPlanning:       0.7,
	},
	StageAdult: {
		genome.DomainMateSelection:      1.3,
		genome.DomainParentalInvestment: 1.3,
	},
	StageSenescent: {
		genome.DomainMetabolism: 0.6,
		genome.DomainMemory:     0.7,
	},
}

// geneNameMultiplier covers the two senescent-stage traits (resilience,
// repair) that are specific genes rather than whole
// domains.
var geneNameMultiplier = map[Stage]map[string]float64{
	StageSenescent: {
		"Resilience": 0.6,
		"Repair":     0.6,
	},
}

// DevelopmentalModifier returns the multiplier StageForAge(ageDays)'s stage
// applies to gene g's base expression.
func DevelopmentalModifier(g genome.Gene, ageDays float64) float64 {
	stage := StageForAge(ageDays)
	mult := 1.0
	if byDomain, ok := domainMultiplier[stage]; ok {
		if m, ok := byDomain[g.Domain]; ok {
			mult = m
		}
	}
	if byName, ok := geneNameMultiplier[stage]; ok {
		if m, ok := byName[g.Name]; ok {
			mult = m
		}
	}
	return mult
}

// criticalWindows maps a domain to the [startDay, endDay) window in which an
// extra plasticity multiplier applies, and the multiplier
// itself: learning 0-7d (x1.5), cooperation 0-14d (x1.3),
// mate-selection 3-21d (x1.4), risk-assessment 7-30d (x1.2).
type criticalWindow struct {
	start, end float64
	multiplier float64
}

var criticalWindows = map[genome.Domain]criticalWindow{
	genome.DomainLearning:       {0, 7, 1.5},
	genome.DomainCooperation:    {0, 14, 1.3},
	genome.DomainMateSelection:  {3, 21, 1.4},
	genome.DomainRiskAssessment: {7, 30, 1.2},
}

// CriticalWindowMultiplier returns the extra plasticity multiplier active
// for domain d at ageDays, or 1.0 outside any critical window.
func CriticalWindowMultiplier(d genome.Domain, ageDays float64) float64 {
	w, ok := criticalWindows[d]
	if !ok {
		return 1.0
	}
	if ageDays >= w.start && ageDays < w.end {
		return w.multiplier
	}
	return 1.0
}
