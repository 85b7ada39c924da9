package expression

import (
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/genome"
)

// Express runs the full expression pipeline over g
// at ageDays (developmental stage, critical windows), env (conditional
// gates), wallClockMillis (oscillator edges), and an optional list of
// epistatic interactions. It never mutates g.
func Express(g *genome.DynamicGenome, env envstate.State, ageDays float64, wallClockMillis float64, interactions []EpistaticInteraction) Result {
	genes := g.AllGenes()

	silenced := make(map[string]bool, len(genes))
	base := make(map[string]float64, len(genes))
	var warnings []error

	// Steps 1-3: conditional resolution, developmental modulation, base
	// expression.
	for _, gene := range genes {
		s := gene.ExpressionState == genome.ExpressionSilenced
		if gene.ExpressionState == genome.ExpressionConditional {
			ok, parsed := evaluateCondition(gene.ActivationCondition, env)
			if !parsed {
				warnings = append(warnings, &ErrInvalidCondition{Condition: gene.ActivationCondition})
			}
			if !ok {
				s = true
			}
		}
		silenced[gene.ID] = s

		devMod := DevelopmentalModifier(gene, ageDays)
		windowMod := CriticalWindowMultiplier(gene.Domain, ageDays)
		base[gene.ID] = gene.Value * gene.Weight * devMod * windowMod
	}

	// Step 4: regulatory fixed point.
	regMultiplier, converged := applyRegulatoryNetwork(g, base, silenced, wallClockMillis)
	if !converged {
		warnings = append(warnings, &ErrRegulatoryDidNotConverge{Rounds: regulatoryMaxRounds})
	}

	// Steps 5-6: epigenetic multiplier and composition.
	values := make(map[string]float64, len(genes))
	for _, gene := range genes {
		if silenced[gene.ID] {
			values[gene.ID] = 0
			continue
		}
		mark := findMark(g.Epigenome, gene.ID)
		epiMult := epigeneticMultiplier(gene, mark, g.Generation)
		v := base[gene.ID] * regMultiplier[gene.ID] * epiMult
		values[gene.ID] = clampRange(v, 0, 3)
	}

	// Step 7: epistasis.
	if len(interactions) > 0 {
		applyEpistasis(values, interactions)
		for _, in := range interactions {
			if silenced[in.HypostaticGeneID] {
				values[in.HypostaticGeneID] = 0
			}
		}
	}

	expressed := ExpressedGenome{Genes: make([]ExpressedGene, 0, len(genes))}
	perGeneCost := make([]float64, 0, len(genes))
	perGeneExpressed := make([]float64, 0, len(genes))
	stats := Stats{PerDomainCounts: make(map[genome.Domain]int)}

	var sumPlasticity, sumEssentiality, sumAge float64
	for _, gene := range genes {
		v := values[gene.ID]
		isSilenced := silenced[gene.ID]
		expressed.Genes = append(expressed.Genes, ExpressedGene{
			GeneID:         gene.ID,
			Name:           gene.Name,
			Domain:         gene.Domain,
			ExpressedValue: v,
			Silenced:       isSilenced,
		})
		perGeneCost = append(perGeneCost, gene.MetabolicCost)
		perGeneExpressed = append(perGeneExpressed, v)

		stats.TotalGenes++
		if isSilenced {
			stats.SilencedGenes++
		} else {
			stats.ActiveGenes++
		}
		stats.PerDomainCounts[gene.Domain]++
		sumPlasticity += gene.Plasticity
		sumEssentiality += gene.Essentiality
		sumAge += float64(gene.Age)
	}
	expressed.index()

	if stats.TotalGenes > 0 {
		n := float64(stats.TotalGenes)
		stats.AveragePlasticity = sumPlasticity / n
		stats.AverageEssentiality = sumEssentiality / n
		stats.AverageAge = sumAge / n
	}
	stats.RegulatoryEdgeCount = len(g.Edges)
	stats.MarkCount = len(g.Epigenome)

	return Result{
		Expressed:          expressed,
		Stats:              stats,
		TotalMetabolicCost: metabolicCost(stats.TotalGenes, perGeneCost, perGeneExpressed),
		Converged:          converged,
		Warnings:           warnings,
	}
}
