package expression

import (
	"testing"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/genome"
)

func neutralEnv() envstate.State {
	return envstate.State{Balance: 100, Mode: envstate.ModeNormal}
}

func TestSilencedGeneExpressesZeroRegardlessOfActivator(t *testing.T) {
	source := genome.NewGene("src", "Source", genome.DomainRegulatory, 1.0, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	target := genome.NewGene("tgt", "Target", genome.DomainMetabolism, 1.0, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	target.ExpressionState = genome.ExpressionSilenced

	chrom := genome.NewChromosome("c1", "Test", false, source, target)
	edges := []genome.RegulatoryEdge{
		{SourceGeneID: "src", TargetGeneID: "tgt", Relationship: genome.RelationshipActivation, Strength: 1.0, Logic: genome.LogicAdditive},
	}
	g := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, edges)

	result := Express(g, neutralEnv(), 40, 0, nil)
	if v := result.Expressed.ValueFor("tgt"); v != 0 {
		t.Fatalf("silenced gene should express 0, got %v", v)
	}
}

func TestOscillatorMultiplierDiffersAcrossHalfPeriod(t *testing.T) {
	// Gene G with logic=oscillator, period=24h,
	// phase=0, strength=1 — the regulatory multiplier at wallClock=0 and
	// again at wallClock=12h must differ by at least 0.3.
	source := genome.NewGene("osc", "Oscillator", genome.DomainRegulatory, 1.0, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	target := genome.NewGene("g", "G", genome.DomainMetabolism, 0.5, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	chrom := genome.NewChromosome("c1", "Test", false, source, target)
	const periodMillis = 24 * 60 * 60 * 1000
	edges := []genome.RegulatoryEdge{
		{SourceGeneID: "osc", TargetGeneID: "g", Relationship: genome.RelationshipActivation, Strength: 1.0, Logic: genome.LogicOscillator, Period: periodMillis, Phase: 0},
	}
	genomeObj := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, edges)

	base := map[string]float64{"osc": 1.0, "g": 0.5}
	silenced := map[string]bool{}

	m0, _ := applyRegulatoryNetwork(genomeObj, base, silenced, 0)
	m12, _ := applyRegulatoryNetwork(genomeObj, base, silenced, periodMillis/2)

	diff := m12["g"] - m0["g"]
	if diff < 0 {
		diff = -diff
	}
	if diff < 0.3 {
		t.Fatalf("expected oscillator regulatory multiplier to differ by >= 0.3 across a half period, got %v (m0=%v m12=%v)", diff, m0["g"], m12["g"])
	}
}

func TestConditionalGeneGatedByEnvironment(t *testing.T) {
	g := genome.NewGene("cond", "Conditional", genome.DomainMetabolism, 1.0, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	g.ExpressionState = genome.ExpressionConditional
	g.ActivationCondition = "balance > 50"

	chrom := genome.NewChromosome("c1", "Test", false, g)
	genomeObj := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, nil)

	rich := Express(genomeObj, envstate.State{Balance: 100}, 40, 0, nil)
	if v := rich.Expressed.ValueFor("cond"); v == 0 {
		t.Fatal("expected conditional gene active when balance exceeds threshold")
	}

	poor := Express(genomeObj, envstate.State{Balance: 10}, 40, 0, nil)
	if v := poor.Expressed.ValueFor("cond"); v != 0 {
		t.Fatalf("expected conditional gene silenced when balance below threshold, got %v", v)
	}
}

func TestMalformedConditionIsConservativeAndWarns(t *testing.T) {
	g := genome.NewGene("cond", "Conditional", genome.DomainMetabolism, 1.0, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	g.ExpressionState = genome.ExpressionConditional
	g.ActivationCondition = "not a valid condition"

	chrom := genome.NewChromosome("c1", "Test", false, g)
	genomeObj := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, nil)

	result := Express(genomeObj, neutralEnv(), 40, 0, nil)
	if v := result.Expressed.ValueFor("cond"); v == 0 {
		t.Fatal("malformed condition should be treated as true, not silence the gene")
	}
	found := false
	for _, w := range result.Warnings {
		if _, ok := w.(*ErrInvalidCondition); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an InvalidCondition warning for a malformed condition")
	}
}

func TestDevelopmentalStageBoundaries(t *testing.T) {
	cases := []struct {
		age  float64
		want Stage
	}{
		{0, StageNeonate},
		{6.9, StageNeonate},
		{7, StageJuvenile},
		{29.9, StageJuvenile},
		{30, StageAdult},
		{89.9, StageAdult},
		{90, StageSenescent},
		{500, StageSenescent},
	}
	for _, c := range cases {
		if got := StageForAge(c.age); got != c.want {
			t.Errorf("StageForAge(%v) = %v, want %v", c.age, got, c.want)
		}
	}
}

func TestNeonateBoostsLearningDampensMetabolism(t *testing.T) {
	learningGene := genome.NewGene("l", "Learner", genome.DomainLearning, 0.5, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	metabolicGene := genome.NewGene("m", "Metab", genome.DomainMetabolism, 0.5, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)

	if DevelopmentalModifier(learningGene, 1) <= 1.0 {
		t.Fatal("expected neonate stage to boost a learning-domain gene above baseline")
	}
	if DevelopmentalModifier(metabolicGene, 1) >= 1.0 {
		t.Fatal("expected neonate stage to dampen a metabolism-domain gene below baseline")
	}
}

func TestExpressedGenomeStatsCoverAllGenes(t *testing.T) {
	g := genepool.CreateGenesisGenome("lineage-stats")
	result := Express(g, neutralEnv(), 40, 0, nil)

	if result.Stats.TotalGenes != g.TotalGeneCount {
		t.Fatalf("stats total genes %d != genome total %d", result.Stats.TotalGenes, g.TotalGeneCount)
	}
	if result.Stats.ActiveGenes+result.Stats.SilencedGenes != result.Stats.TotalGenes {
		t.Fatal("active + silenced should equal total genes")
	}
	if result.Stats.RegulatoryEdgeCount != len(g.Edges) {
		t.Fatal("regulatory edge count should mirror the genome's edge count")
	}
	if result.TotalMetabolicCost <= 0 {
		t.Fatal("expected a positive total metabolic cost with a non-empty genome")
	}
}

func TestEpistasisSuppressiveForcesHypostaticToZero(t *testing.T) {
	epi := genome.NewGene("epi", "Epi", genome.DomainRegulatory, 0.9, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)
	hypo := genome.NewGene("hypo", "Hypo", genome.DomainMetabolism, 0.9, 1.0, 0.5, 0.5, 0.5, 0, genome.OriginPrimordial)

	chrom := genome.NewChromosome("c1", "Test", false, epi, hypo)
	genomeObj := genome.NewGenome("L", 0, 0, []genome.Chromosome{chrom}, nil)

	interactions := []EpistaticInteraction{
		{EpistaticGeneID: "epi", HypostaticGeneID: "hypo", Relationship: EpistasisSuppressive, Penetrance: 1.0},
	}
	result := Express(genomeObj, neutralEnv(), 40, 0, interactions)
	if v := result.Expressed.ValueFor("hypo"); v != 0 {
		t.Fatalf("full-penetrance suppressive epistasis should zero the hypostatic gene, got %v", v)
	}
}

func TestGenesisExpressionConverges(t *testing.T) {
	g := genepool.CreateGenesisGenome("lineage-conv")
	result := Express(g, neutralEnv(), 40, 0, nil)
	if !result.Converged {
		t.Fatal("expected the seed regulatory network to converge within the round cap")
	}
}

func TestQuickMetabolicCostAtLeastFloor(t *testing.T) {
	g := genepool.CreateGenesisGenome("L")
	quick := GetQuickMetabolicCost(g)
	if quick < CostFloor(g.TotalGeneCount) {
		t.Fatalf("quick cost %v below the floor for %d genes", quick, g.TotalGeneCount)
	}

	// Silencing every gene strips the per-expression component.
	silenced := g.Clone()
	for ci := range silenced.Chromosomes {
		for gi := range silenced.Chromosomes[ci].Genes {
			silenced.Chromosomes[ci].Genes[gi].ExpressionState = genome.ExpressionSilenced
		}
	}
	if got := GetQuickMetabolicCost(silenced); got != CostFloor(silenced.TotalGeneCount) {
		t.Fatalf("fully silenced genome should cost exactly the floor, got %v", got)
	}
}

func TestCanSurviveScalesWithBalance(t *testing.T) {
	g := genepool.CreateGenesisGenome("L")
	if !CanSurvive(g, 1000, 7) {
		t.Fatal("a large balance must cover a week")
	}
	if CanSurvive(g, 0, 1) {
		t.Fatal("a zero balance covers nothing")
	}
}
