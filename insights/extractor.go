package insights

import (
	"sort"
	"time"

	"github.com/axobase/egde/adaptiverate"
	"github.com/axobase/egde/evolution"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/registry"
	"github.com/axobase/egde/survival"
)

// Extractor computes insight summaries from the live registry. It keeps a
// rolling average-fitness history so the stagnation gate has something to
// chew on.
type Extractor struct {
	populationID   string
	fitnessHistory []float64
}

// NewExtractor creates a new insights extractor for one population.
func NewExtractor(populationID string) *Extractor {
	return &Extractor{populationID: populationID}
}

// Summarize computes the full insight summary from the current registry
// state.
func (e *Extractor) Summarize() InsightSummary {
	agents := registry.AllAgents()

	var (
		hashes    []string
		fitnesses []float64
		genomes   []GenomeInsights
		decisions []DecisionInsights
		alive     int
		maxGen    int
	)

	for _, a := range agents {
		snap := a.Snapshot()
		if snap.Status == survival.StatusAlive {
			alive++
		}
		if snap.Generation > maxGen {
			maxGen = snap.Generation
		}
		hashes = append(hashes, snap.GenomeHash)

		g := a.GenomeClone()
		gi := GenomeInsights{
			AgentID:         snap.ID,
			GenomeHash:      snap.GenomeHash,
			Generation:      snap.Generation,
			TotalGenes:      g.TotalGeneCount,
			EpigeneticMarks: len(g.Epigenome),
			RegulatoryEdges: len(g.Edges),
		}
		if res, ok := a.LastExpression(); ok {
			gi.ActiveGenes = res.Stats.ActiveGenes
			gi.SilencedGenes = res.Stats.SilencedGenes
			gi.TotalMetabolicCost = res.TotalMetabolicCost
			gi.Fitness = evolution.Fitness(g, &res)
			gi.TopTraits = topTraits(res, 10)
			fitnesses = append(fitnesses, gi.Fitness)
		}
		genomes = append(genomes, gi)

		if d, ok := a.LastDecision(); ok {
			decisions = append(decisions, DecisionInsights{
				AgentID:          snap.ID,
				Cycle:            snap.Cycle,
				SelectedStrategy: d.SelectedStrategy,
				SelectedAction:   string(d.SelectedAction),
				Confidence:       d.Confidence,
				Reasoning:        d.Reasoning,
				Alternatives:     d.Alternatives,
				Mode:             string(snap.Env.Mode),
			})
		}
	}

	avg, variance := meanAndVariance(fitnesses)
	e.fitnessHistory = append(e.fitnessHistory, avg)

	metrics := adaptiverate.PopulationMetrics{
		AverageFitness:   avg,
		FitnessVariance:  variance,
		GeneticDiversity: adaptiverate.ComputeDiversity(hashes),
		Generation:       maxGen,
		FitnessHistory:   e.fitnessHistory,
	}
	stagnant, _ := adaptiverate.IsStagnant(metrics)
	rates := adaptiverate.DeriveRates(metrics, 0)

	return InsightSummary{
		PopulationID: e.populationID,
		Timestamp:    time.Now(),
		Population: PopulationInsights{
			AgentCount:       len(agents),
			AliveCount:       alive,
			AverageFitness:   avg,
			FitnessVariance:  variance,
			GeneticDiversity: metrics.GeneticDiversity,
			MaxGeneration:    maxGen,
			Stagnant:         stagnant,
			BaseMutationRate: rates.Base,
		},
		Genomes:   genomes,
		Decisions: decisions,
	}
}

func meanAndVariance(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return mean, variance / float64(len(values))
}

// topTraits returns the n highest-expressed genes keyed by gene id.
func topTraits(res expression.Result, n int) map[string]float64 {
	genes := append([]expression.ExpressedGene{}, res.Expressed.Genes...)
	sort.Slice(genes, func(i, j int) bool { return genes[i].ExpressedValue > genes[j].ExpressedValue })
	if len(genes) > n {
		genes = genes[:n]
	}
	out := make(map[string]float64, len(genes))
	for _, g := range genes {
		out[g.GeneID] = g.ExpressedValue
	}
	return out
}
