package evolution

import (
	"math"

	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/operators"
)

// RiskLevel grades how risky accepting a partner looks.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// MatingDecision is the evaluator's verdict on a partner signal.
type MatingDecision string

const (
	DecisionAccept    MatingDecision = "accept"
	DecisionReject    MatingDecision = "reject"
	DecisionNegotiate MatingDecision = "negotiate"
)

// Evaluation is the full partner assessment.
type Evaluation struct {
	Attractiveness       float64        `json:"attractiveness"`
	GeneticCompatibility float64        `json:"geneticCompatibility"`
	EstimatedFitness     float64        `json:"estimatedFitness"`
	Kinship              float64        `json:"kinship"`
	RiskAssessment       RiskLevel      `json:"riskAssessment"`
	Decision             MatingDecision `json:"decision"`
	Reason               string         `json:"reason"`
}

// Evaluation thresholds. Selectivity shifts the accept bar: a highly
// partner-selective genome demands more attractiveness before accepting.
const (
	acceptFloorBase      = 0.35
	selectivityBarWeight = 0.25
	negotiateBand        = 0.12
	kinshipRejectCeiling = 0.5
	signalDiscountFactor = 0.85 // advertised fitness is taken with a pinch of salt
)

// EvaluatePartner scores a partner's mating signal against the evaluator's
// own genome and expression. myID is used for kinship lookups against the
// coordinator's lineage cache.
func (c *Coordinator) EvaluatePartner(myID string, myGenome *genome.DynamicGenome, myExpressed *expression.Result, partner MatingSignal) Evaluation {
	estimated := partner.AdvertisedFitness * signalDiscountFactor

	kinship := c.kinshipScore(myID, partner.AgentID)
	compat := geneticCompatibility(myGenome, partner)

	// Attractiveness blends the (discounted) advertised fitness, genetic
	// compatibility, and the partner's offered parental investment.
	attractiveness := 0.5*estimated + 0.3*compat + 0.2*partner.OfferedInvestment
	attractiveness *= 1 - kinship

	risk := RiskLow
	switch {
	case kinship > 0 || estimated < 0.2:
		risk = RiskHigh
	case compat < 0.4 || partner.AdvertisedFitness > 0.95:
		// A too-good-to-be-true signal is itself a warning sign.
		risk = RiskMedium
	}

	selectivity := normTrait(traitValue(myExpressed.Expressed, "partner_selectivity"))
	acceptBar := acceptFloorBase + selectivityBarWeight*selectivity

	ev := Evaluation{
		Attractiveness:       attractiveness,
		GeneticCompatibility: compat,
		EstimatedFitness:     estimated,
		Kinship:              kinship,
		RiskAssessment:       risk,
	}
	switch {
	case kinship >= kinshipRejectCeiling:
		ev.Decision = DecisionReject
		ev.Reason = "partner is close kin"
	case attractiveness >= acceptBar:
		ev.Decision = DecisionAccept
		ev.Reason = "attractive partner"
	case attractiveness >= acceptBar-negotiateBand:
		ev.Decision = DecisionNegotiate
		ev.Reason = "marginal partner, negotiating investment"
	default:
		ev.Decision = DecisionReject
		ev.Reason = "partner below acceptance threshold"
	}
	return ev
}

// kinshipScore maps lineage distance to [0,1]: 1 for self, then 0.75, 0.5
// and 0.25 for a common ancestor within one, two or three generations, and 0
// outside the three-generation window the inbreeding check uses.
func (c *Coordinator) kinshipScore(myID, partnerID string) float64 {
	if myID == partnerID {
		return 1
	}
	w := c.lineage.GenerationsToCommonAncestor(myID, partnerID, 3)
	if w < 0 {
		return 0
	}
	return 1 - float64(w)/4
}

// geneticCompatibility estimates how well two genomes would cross from what
// a signal exposes: generation proximity and gene-count ratio. Identical
// hashes score zero — a clone cannot contribute variation.
func geneticCompatibility(myGenome *genome.DynamicGenome, partner MatingSignal) float64 {
	if partner.GenomeHash == myGenome.GenomeHash {
		return 0
	}
	genGap := math.Abs(float64(myGenome.Generation - partner.Generation))
	genScore := 1 / (1 + genGap/4)

	mine, theirs := float64(myGenome.TotalGeneCount), float64(partner.GeneCount)
	sizeScore := 0.0
	if mine > 0 && theirs > 0 {
		sizeScore = math.Min(mine, theirs) / math.Max(mine, theirs)
	}
	return 0.5*genScore + 0.5*sizeScore
}

var _ operators.LineageCache = (*Lineage)(nil)
