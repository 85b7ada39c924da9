// Package genepool holds the fixed initial gene library genesis genomes are
// built from: eight seed chromosomes totalling 63 genes, plus
// the seed regulatory network. genepool_test.go checks that the genesis hash
// is deterministic and does not depend on the lineage id; it does not pin the
// hash to a fixed value.
package genepool

import "github.com/axobase/egde/genome"

// geneSpec is the literal data for one seed gene; newGene turns it into a
// genome.Gene with clamping applied.
type geneSpec struct {
	id, name                                                          string
	domain                                                            genome.Domain
	value, weight, dominance, plasticity, essentiality, metabolicCost float64
}

func newGene(s geneSpec) genome.Gene {
	return genome.NewGene(s.id, s.name, s.domain, s.value, s.weight, s.dominance, s.plasticity, s.essentiality, s.metabolicCost, genome.OriginPrimordial)
}

// metabolismGenes is the essential Metabolism & Survival chromosome (8 genes).
func metabolismGenes() []genome.Gene {
	specs := []geneSpec{
		{"meta.metabolic_rate", "Metabolic Rate", genome.DomainMetabolism, 0.5, 1.2, 0.7, 0.3, 0.95, 0.004},
		{"meta.energy_storage_efficiency", "Energy Storage Efficiency", genome.DomainMetabolism, 0.45, 1.0, 0.5, 0.4, 0.7, 0.002},
		{"meta.resource_conservation", "Resource Conservation", genome.DomainMetabolism, 0.4, 0.9, 0.5, 0.5, 0.6, 0.001},
		{"meta.cycle_speed", "Cycle Speed", genome.DomainMetabolism, 0.5, 1.0, 0.5, 0.4, 0.8, 0.002},
		{"meta.starvation_resistance", "Starvation Resistance", genome.DomainMetabolism, 0.35, 1.1, 0.6, 0.3, 0.85, 0.003},
		{"meta.consumption_efficiency", "Consumption Efficiency", genome.DomainMetabolism, 0.4, 0.8, 0.4, 0.4, 0.55, 0.001},
		{"meta.metabolic_flexibility", "Metabolic Flexibility", genome.DomainMetabolism, 0.3, 0.7, 0.3, 0.6, 0.4, 0.001},
		{"meta.waste_recycling", "Waste Recycling", genome.DomainMetabolism, 0.25, 0.6, 0.3, 0.5, 0.3, 0.0005},
	}
	return build(specs)
}

// perceptionCognitionGenes is the essential Perception & Cognition
// chromosome (9 genes).
func perceptionCognitionGenes() []genome.Gene {
	specs := []geneSpec{
		{"percog.environment_sensing", "Environment Sensing", genome.DomainPerception, 0.5, 1.0, 0.5, 0.5, 0.8, 0.002},
		{"percog.signal_filtering", "Signal Filtering", genome.DomainPerception, 0.45, 0.9, 0.4, 0.5, 0.55, 0.001},
		{"percog.threat_detection", "Threat Detection", genome.DomainPerception, 0.4, 1.0, 0.5, 0.4, 0.75, 0.002},
		{"percog.working_memory", "Working Memory", genome.DomainMemory, 0.45, 1.1, 0.5, 0.5, 0.7, 0.003},
		{"percog.metacognition", "Metacognition", genome.DomainCognition, 0.3, 0.8, 0.3, 0.6, 0.4, 0.001},
		{"percog.learning_rate", "Learning Rate", genome.DomainCognition, 0.4, 0.9, 0.3, 0.7, 0.5, 0.002},
		{"percog.pattern_recognition", "Pattern Recognition", genome.DomainCognition, 0.45, 1.0, 0.5, 0.5, 0.6, 0.002},
		{"percog.decision_speed", "Decision Speed", genome.DomainCognition, 0.4, 0.9, 0.4, 0.4, 0.6, 0.0015},
		{"percog.cognitive_load_tolerance", "Cognitive Load Tolerance", genome.DomainCognition, 0.35, 0.8, 0.4, 0.5, 0.5, 0.0015},
	}
	return build(specs)
}

// economicStrategyGenes is the non-essential Economic Strategy chromosome
// (7 genes).
func economicStrategyGenes() []genome.Gene {
	specs := []geneSpec{
		{"econ.budget_discipline", "Budget Discipline", genome.DomainResourceManagement, 0.4, 0.9, 0.4, 0.4, 0.5, 0.001},
		{"econ.capital_allocation", "Capital Allocation", genome.DomainResourceManagement, 0.35, 0.8, 0.3, 0.5, 0.4, 0.001},
		{"econ.risk_appetite", "Risk Appetite", genome.DomainRiskAssessment, 0.3, 0.8, 0.3, 0.5, 0.3, 0.001},
		{"econ.uncertainty_tolerance", "Uncertainty Tolerance", genome.DomainRiskAssessment, 0.35, 0.7, 0.3, 0.5, 0.3, 0.001},
		{"econ.arbitrage_sense", "Arbitrage Sense", genome.DomainTrading, 0.25, 0.6, 0.2, 0.5, 0.2, 0.001},
		{"econ.market_timing", "Market Timing", genome.DomainTrading, 0.25, 0.6, 0.2, 0.5, 0.2, 0.001},
		{"econ.income_diversification", "Income Diversification", genome.DomainIncomeStrategy, 0.3, 0.7, 0.3, 0.5, 0.3, 0.001},
	}
	return build(specs)
}

// internetCapabilitiesGenes is the non-essential Internet Capabilities
// chromosome (9 genes).
func internetCapabilitiesGenes() []genome.Gene {
	specs := []geneSpec{
		{"net.tx_construction", "Transaction Construction", genome.DomainOnChainOp, 0.35, 0.8, 0.3, 0.4, 0.4, 0.001},
		{"net.gas_optimization", "Gas Optimization", genome.DomainOnChainOp, 0.3, 0.7, 0.3, 0.4, 0.3, 0.001},
		{"net.browsing_efficiency", "Browsing Efficiency", genome.DomainWebNavigation, 0.3, 0.7, 0.3, 0.5, 0.3, 0.001},
		{"net.link_evaluation", "Link Evaluation", genome.DomainWebNavigation, 0.3, 0.6, 0.3, 0.5, 0.25, 0.0005},
		{"net.content_generation", "Content Generation", genome.DomainContentCreation, 0.3, 0.7, 0.3, 0.5, 0.3, 0.001},
		{"net.narrative_style", "Narrative Style", genome.DomainContentCreation, 0.3, 0.6, 0.3, 0.5, 0.25, 0.0005},
		{"net.signal_extraction", "Signal Extraction", genome.DomainDataAnalysis, 0.35, 0.8, 0.3, 0.5, 0.35, 0.001},
		{"net.trend_detection", "Trend Detection", genome.DomainDataAnalysis, 0.3, 0.7, 0.3, 0.5, 0.3, 0.001},
		{"net.engagement_tactics", "Engagement Tactics", genome.DomainSocialMedia, 0.25, 0.6, 0.2, 0.5, 0.2, 0.0005},
	}
	return build(specs)
}

// socialReproductionGenes is the non-essential Social & Reproduction
// chromosome (9 genes).
func socialReproductionGenes() []genome.Gene {
	specs := []geneSpec{
		{"social.agent_cooperation", "Agent Cooperation", genome.DomainCooperation, 0.45, 1.0, 0.4, 0.5, 0.45, 0.001},
		{"social.reciprocity_tracking", "Reciprocity Tracking", genome.DomainCooperation, 0.35, 0.8, 0.3, 0.5, 0.3, 0.001},
		{"social.rivalry_response", "Rivalry Response", genome.DomainCompetition, 0.3, 0.8, 0.3, 0.4, 0.3, 0.001},
		{"social.territorial_instinct", "Territorial Instinct", genome.DomainCompetition, 0.25, 0.7, 0.3, 0.4, 0.25, 0.0005},
		{"social.signal_honesty", "Signal Honesty", genome.DomainCommunication, 0.5, 0.9, 0.4, 0.4, 0.4, 0.001},
		{"social.persuasion", "Persuasion", genome.DomainCommunication, 0.3, 0.8, 0.3, 0.5, 0.3, 0.001},
		{"social.trust_default", "Trust Default", genome.DomainTrustModel, 0.45, 0.9, 0.4, 0.5, 0.4, 0.001},
		{"social.partner_selectivity", "Partner Selectivity", genome.DomainMateSelection, 0.3, 0.7, 0.3, 0.5, 0.3, 0.001},
		{"social.offspring_investment", "Offspring Investment", genome.DomainParentalInvestment, 0.35, 0.8, 0.3, 0.5, 0.3, 0.001},
	}
	return build(specs)
}

// humanInterfaceGenes is the non-essential Human Interface chromosome
// (6 genes).
func humanInterfaceGenes() []genome.Gene {
	specs := []geneSpec{
		{"human.hiring_judgment", "Hiring Judgment", genome.DomainHumanHiring, 0.25, 0.6, 0.2, 0.5, 0.2, 0.0005},
		{"human.task_specification", "Task Specification", genome.DomainHumanHiring, 0.25, 0.6, 0.2, 0.5, 0.2, 0.0005},
		{"human.instruction_clarity", "Instruction Clarity", genome.DomainHumanCommunication, 0.3, 0.6, 0.2, 0.5, 0.2, 0.0005},
		{"human.negotiation_style", "Negotiation Style", genome.DomainHumanCommunication, 0.3, 0.6, 0.2, 0.5, 0.2, 0.0005},
		{"human.work_evaluation", "Work Evaluation", genome.DomainHumanEvaluation, 0.3, 0.6, 0.2, 0.5, 0.2, 0.0005},
		{"human.feedback_calibration", "Feedback Calibration", genome.DomainHumanEvaluation, 0.3, 0.6, 0.2, 0.5, 0.2, 0.0005},
	}
	return build(specs)
}

// stressResponseGenes is the essential Stress Response chromosome (6 genes).
func stressResponseGenes() []genome.Gene {
	specs := []geneSpec{
		{"stress.acute_stress_response", "Acute Stress Response", genome.DomainStressResponse, 0.4, 1.1, 0.6, 0.4, 0.85, 0.002},
		{"stress.resilience", "Resilience", genome.DomainStressResponse, 0.4, 0.9, 0.5, 0.4, 0.6, 0.001},
		{"stress.adaptation_rate", "Adaptation Rate", genome.DomainAdaptation, 0.35, 0.8, 0.4, 0.6, 0.5, 0.001},
		{"stress.repair", "Repair", genome.DomainAdaptation, 0.3, 0.7, 0.4, 0.5, 0.45, 0.001},
		{"stress.dormancy_threshold", "Dormancy Threshold", genome.DomainDormancy, 0.3, 0.7, 0.3, 0.4, 0.4, 0.0005},
		{"stress.migration_drive", "Migration Drive", genome.DomainMigration, 0.2, 0.6, 0.2, 0.5, 0.25, 0.0005},
	}
	return build(specs)
}

// regulatoryControlGenes is the essential Regulatory Control chromosome
// (9 genes), including the three regulatory-hub "signal" genes the seed
// network's edges originate from.
func regulatoryControlGenes() []genome.Gene {
	specs := []geneSpec{
		{"reg.regulatory_sensitivity", "Regulatory Sensitivity", genome.DomainRegulatory, 0.4, 0.9, 0.5, 0.4, 0.7, 0.001},
		{"reg.self_model_accuracy", "Self Model Accuracy", genome.DomainSelfModel, 0.3, 0.7, 0.3, 0.5, 0.4, 0.001},
		{"reg.strategy_evaluation_acuity", "Strategy Evaluation Acuity", genome.DomainStrategyEval, 0.35, 0.8, 0.3, 0.5, 0.45, 0.001},
		{"reg.learning_consolidation", "Learning Consolidation", genome.DomainLearning, 0.35, 0.8, 0.3, 0.6, 0.4, 0.001},
		{"reg.long_horizon_planning", "Long Horizon Planning", genome.DomainPlanning, 0.3, 0.7, 0.3, 0.5, 0.35, 0.001},
		{"reg.novelty_seeking", "Novelty Seeking", genome.DomainNoveltySeeking, 0.3, 0.6, 0.2, 0.6, 0.25, 0.0005},
		{"reg.stress_signal", "Stress Signal", genome.DomainRegulatory, 0.2, 0.5, 0.6, 0.3, 0.8, 0.0005},
		{"reg.social_context_signal", "Social Context Signal", genome.DomainRegulatory, 0.2, 0.5, 0.6, 0.3, 0.6, 0.0005},
		{"reg.circadian_signal", "Circadian Signal", genome.DomainRegulatory, 0.5, 0.5, 0.6, 0.2, 0.6, 0.0005},
	}
	return build(specs)
}

func build(specs []geneSpec) []genome.Gene {
	out := make([]genome.Gene, len(specs))
	for i, s := range specs {
		out[i] = newGene(s)
	}
	return out
}

// SeedChromosomes returns the eight seed chromosomes in declaration order,
// totalling 63 genes.
func SeedChromosomes() []genome.Chromosome {
	return []genome.Chromosome{
		genome.NewChromosome("metabolism-survival", "Metabolism & Survival", true, metabolismGenes()...),
		genome.NewChromosome("perception-cognition", "Perception & Cognition", true, perceptionCognitionGenes()...),
		genome.NewChromosome("economic-strategy", "Economic Strategy", false, economicStrategyGenes()...),
		genome.NewChromosome("internet-capabilities", "Internet Capabilities", false, internetCapabilitiesGenes()...),
		genome.NewChromosome("social-reproduction", "Social & Reproduction", false, socialReproductionGenes()...),
		genome.NewChromosome("human-interface", "Human Interface", false, humanInterfaceGenes()...),
		genome.NewChromosome("stress-response", "Stress Response", true, stressResponseGenes()...),
		genome.NewChromosome("regulatory-control", "Regulatory Control", true, regulatoryControlGenes()...),
	}
}

// oscillatorPeriodMillis is 24h expressed in the wall-clock milliseconds unit
// the expression engine's oscillator logic uses.
const oscillatorPeriodMillis = 24 * 60 * 60 * 1000

// SeedEdges returns the seed regulatory network:
// stress -> {stress-response activation, cognition inhibition}; social
// context -> {cooperation activation, competition inhibition}; circadian ->
// metabolism activation (via an oscillator edge).
func SeedEdges() []genome.RegulatoryEdge {
	return []genome.RegulatoryEdge{
		{SourceGeneID: "reg.stress_signal", TargetGeneID: "stress.acute_stress_response", Relationship: genome.RelationshipActivation, Strength: 0.8, Logic: genome.LogicAdditive},
		{SourceGeneID: "reg.stress_signal", TargetGeneID: "percog.working_memory", Relationship: genome.RelationshipInhibition, Strength: 0.5, Logic: genome.LogicAdditive},
		{SourceGeneID: "reg.stress_signal", TargetGeneID: "percog.decision_speed", Relationship: genome.RelationshipInhibition, Strength: 0.4, Logic: genome.LogicAdditive},
		{SourceGeneID: "reg.social_context_signal", TargetGeneID: "social.agent_cooperation", Relationship: genome.RelationshipActivation, Strength: 0.7, Logic: genome.LogicAdditive},
		{SourceGeneID: "reg.social_context_signal", TargetGeneID: "social.rivalry_response", Relationship: genome.RelationshipInhibition, Strength: 0.6, Logic: genome.LogicAdditive},
		{SourceGeneID: "reg.circadian_signal", TargetGeneID: "meta.metabolic_rate", Relationship: genome.RelationshipActivation, Strength: 0.6, Logic: genome.LogicOscillator, Period: oscillatorPeriodMillis, Phase: 0},
	}
}

// CreateGenesisGenome builds the deterministic genesis genome for a lineage,
// generation 0.
func CreateGenesisGenome(lineageID string) *genome.DynamicGenome {
	g := genome.NewGenome(lineageID, 0, 0, SeedChromosomes(), SeedEdges())
	return g
}
