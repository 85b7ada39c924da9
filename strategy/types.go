// Package strategy implements the fixed strategy catalogue and the
// multi-stage filter that narrows it to an agent's currently viable
// options.
package strategy

import (
	"strings"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
)

// Category is one of the six strategy categories.
type Category string

const (
	CategorySurvival     Category = "survival"
	CategoryIncome       Category = "income"
	CategorySocial       Category = "social"
	CategoryReproduction Category = "reproduction"
	CategoryLearning     Category = "learning"
	CategoryDefense      Category = "defense"
)

// Horizon is a strategy's expected time-to-payoff bucket.
type Horizon string

const (
	HorizonImmediate Horizon = "immediate"
	HorizonShort     Horizon = "short"
	HorizonMedium    Horizon = "medium"
	HorizonLong      Horizon = "long"
)

// GeneRequirement is a minimum expressed-value gate on a named trait.
// TraitName matches the suffix of a gene id after its final '.' (e.g.
// "risk_appetite" for "econ.risk_appetite"), so a requirement is
// domain-prefix agnostic.
type GeneRequirement struct {
	TraitName string
	Min       float64
}

// Strategy is one catalogue entry.
type Strategy struct {
	ID               string
	Name             string
	Category         Category
	GeneRequirements []GeneRequirement
	RequiredTools    []string
	Risk             float64 // [0,1]
	Complexity       float64 // [0,1]
	TypicalPayoff    float64 // stable units; negative means investment
	Horizon          Horizon
}

// Candidate is a surviving strategy annotated with its computed scores.
type Candidate struct {
	Strategy         Strategy
	GenomeMatch      float64
	EstimatedSuccess float64
	Priority         float64
}

// Context is everything the filter and scorer need beyond the catalogue
// itself.
type Context struct {
	Expressed            expression.ExpressedGenome
	AvailableTools       map[string]bool
	Mode                 envstate.Mode
	Balance              float64
	TotalMetabolicCost   float64
	RunwayDays           float64
	DaysThriving         float64
	RecentDeceptionCount float64
	MarketRisk           float64 // [0,1]
	ExperienceBonus      float64 // added to estimatedSuccess
}

// traitValue looks up an expressed gene's value by trait-name suffix,
// matching any domain prefix (e.g. "risk_appetite" matches
// "econ.risk_appetite").
func traitValue(expressed expression.ExpressedGenome, trait string) float64 {
	suffix := "." + trait
	for _, g := range expressed.Genes {
		if g.GeneID == trait || strings.HasSuffix(g.GeneID, suffix) {
			return g.ExpressedValue
		}
	}
	return 0
}

// domainMax returns the highest expressed value among genes in domain, or 0
// if none are expressed.
func domainMax(expressed expression.ExpressedGenome, domain genome.Domain) float64 {
	max := 0.0
	for _, g := range expressed.Genes {
		if g.Domain == domain && g.ExpressedValue > max {
			max = g.ExpressedValue
		}
	}
	return max
}

// RiskTolerance implements the contractual riskTolerance formula.
func RiskTolerance(expressed expression.ExpressedGenome) float64 {
	riskAppetite := traitValue(expressed, "risk_appetite")
	uncertaintyTolerance := traitValue(expressed, "uncertainty_tolerance")
	acuteStressResponse := traitValue(expressed, "acute_stress_response")
	riskDomainMax := domainMax(expressed, genome.DomainRiskAssessment)
	return 0.4*riskAppetite + 0.3*uncertaintyTolerance + 0.2*(1-acuteStressResponse) + 0.1*riskDomainMax
}

// ComplexityTolerance implements the contractual complexityTolerance formula.
func ComplexityTolerance(expressed expression.ExpressedGenome) float64 {
	workingMemory := traitValue(expressed, "working_memory")
	metacognition := traitValue(expressed, "metacognition")
	learningRate := traitValue(expressed, "learning_rate")
	return 0.5*workingMemory + 0.3*metacognition + 0.2*learningRate
}

// SocialOrientation implements the contractual socialOrientation formula.
func SocialOrientation(expressed expression.ExpressedGenome) float64 {
	agentCooperation := traitValue(expressed, "agent_cooperation")
	trustDefault := traitValue(expressed, "trust_default")
	cooperationDomainMax := domainMax(expressed, genome.DomainCooperation)
	return 0.4*agentCooperation + 0.4*trustDefault + 0.2*cooperationDomainMax
}
