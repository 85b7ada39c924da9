package evolution

import (
	"math"
	"strings"

	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
)

// essentialGeneFloor is the essentiality above which a gene counts toward
// the essential-expression term, the same cutoff the deletion operator
// treats as untouchable.
const essentialGeneFloor = 0.8

// Fitness scores a genome against its own expression:
// 0.4*metabolicEfficiency + 0.3*normalisedShannonEntropy(expressionValues)
// + 0.3*meanEssentialExpression. All three terms are in
// [0,1], so fitness is too.
func Fitness(g *genome.DynamicGenome, res *expression.Result) float64 {
	return 0.4*metabolicEfficiency(g, res) +
		0.3*normalizedShannonEntropy(res.Expressed.Genes) +
		0.3*meanEssentialExpression(g, res)
}

// metabolicEfficiency is the cost floor (base rate plus per-gene overhead,
// the cheapest any genome of this size can run) over the actual cost. The
// actual cost is never below the floor, so the ratio is in (0,1]; a genome
// whose expression burns little above the floor scores high.
func metabolicEfficiency(g *genome.DynamicGenome, res *expression.Result) float64 {
	floor := expression.CostFloor(len(g.AllGenes()))
	if res.TotalMetabolicCost <= 0 {
		return 0
	}
	eff := floor / res.TotalMetabolicCost
	if eff > 1 {
		eff = 1
	}
	return eff
}

// normalizedShannonEntropy treats the expression values as a distribution
// and returns H/H_max, rewarding genomes that spread expression across many
// genes instead of concentrating it in a few.
func normalizedShannonEntropy(genes []expression.ExpressedGene) float64 {
	total := 0.0
	for _, eg := range genes {
		total += eg.ExpressedValue
	}
	if total <= 0 || len(genes) < 2 {
		return 0
	}
	h := 0.0
	for _, eg := range genes {
		if eg.ExpressedValue <= 0 {
			continue
		}
		p := eg.ExpressedValue / total
		h -= p * math.Log(p)
	}
	return h / math.Log(float64(len(genes)))
}

// meanEssentialExpression is the average expressed value of high-
// essentiality genes, normalized from the [0,3] expression range to [0,1].
func meanEssentialExpression(g *genome.DynamicGenome, res *expression.Result) float64 {
	sum, n := 0.0, 0
	for _, gene := range g.AllGenes() {
		if gene.Essentiality < essentialGeneFloor {
			continue
		}
		sum += res.Expressed.ValueFor(gene.ID)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) / 3.0
}

// traitValue looks up an expressed gene's value by trait-name suffix,
// matching any chromosome prefix (e.g. "signal_honesty" matches
// "social.signal_honesty").
func traitValue(expressed expression.ExpressedGenome, trait string) float64 {
	suffix := "." + trait
	for _, eg := range expressed.Genes {
		if eg.GeneID == trait || strings.HasSuffix(eg.GeneID, suffix) {
			return eg.ExpressedValue
		}
	}
	return 0
}

// normTrait squashes a [0,3] expressed value into [0,1].
func normTrait(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
