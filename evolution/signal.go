package evolution

import (
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
)

// maxSignalInflation bounds how far a fully dishonest signaller can
// overstate its fitness (50% above the true value).
const maxSignalInflation = 0.5

// MatingSignal is what one agent advertises to prospective partners. The
// fitness figure is self-reported and distorted in proportion to how little
// the signal_honesty trait is expressed; receivers cannot recover the true
// value from the signal alone.
type MatingSignal struct {
	AgentID           string  `json:"agentId"`
	LineageID         string  `json:"lineageId"`
	GenomeHash        string  `json:"genomeHash"`
	Generation        int     `json:"generation"`
	GeneCount         int     `json:"geneCount"`
	AdvertisedFitness float64 `json:"advertisedFitness"`
	OfferedInvestment float64 `json:"offeredInvestment"`
	Timestamp         int64   `json:"timestamp"`
}

// GenerateMatingSignal computes the agent's true fitness and inflates it by
// up to maxSignalInflation as signal_honesty falls toward zero.
func (c *Coordinator) GenerateMatingSignal(agentID string, g *genome.DynamicGenome, res *expression.Result) MatingSignal {
	trueFitness := Fitness(g, res)
	honesty := normTrait(traitValue(res.Expressed, "signal_honesty"))
	advertised := trueFitness * (1 + maxSignalInflation*(1-honesty))
	if advertised > 1 {
		advertised = 1
	}
	return MatingSignal{
		AgentID:           agentID,
		LineageID:         g.LineageID,
		GenomeHash:        g.GenomeHash,
		Generation:        g.Generation,
		GeneCount:         g.TotalGeneCount,
		AdvertisedFitness: advertised,
		OfferedInvestment: normTrait(traitValue(res.Expressed, "offspring_investment")),
		Timestamp:         c.clock.Now().UnixMilli(),
	}
}
