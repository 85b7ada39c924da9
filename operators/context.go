// Package operators implements the genetic operator pipeline that turns two
// parent genomes into a child genome: crossover, mutation, duplication,
// deletion, de-novo birth, regulatory recombination, structural variation,
// and gene conversion, plus horizontal gene transfer and the
// inbreeding check that gates breeding.
package operators

import "github.com/axobase/egde/genome"

// BreedingContext carries everything one breed() call needs beyond the rng.
type BreedingContext struct {
	ParentA             *genome.DynamicGenome
	ParentB             *genome.DynamicGenome
	ParentAID           string
	ParentBID           string
	EnvironmentalStress float64 // [0,1]
	StarvationMode      bool
	BirthTimestamp      int64 // unix millis the coordinator's Clock port read for the child
}

// MutationRecord documents one point/large/weight mutation applied during
// breeding, sufficient to replay the decision.
type MutationRecord struct {
	GeneID string
	Kind   string // "point", "large", "weight", "duplication", "deletion", "de-novo"
	Before float64
	After  float64
}

// CrossoverEvent documents one chromosome or gene-level crossover decision.
type CrossoverEvent struct {
	ChromosomeID string
	GeneID       string // empty when the whole chromosome was inherited
	FromParent   string // ParentAID or ParentBID
	Mode         string // "single-parent", "chromosome-whole", "gene-uniform", "extra-gene"
}

// StructuralVariationRecord documents one inversion or translocation.
type StructuralVariationRecord struct {
	Kind              string // "inversion", "translocation"
	ChromosomeID      string
	OtherChromosomeID string // translocation only
	Start, End        int
}

// GeneConversionRecord documents one gene-conversion blend.
type GeneConversionRecord struct {
	ChromosomeID   string
	DonorGeneID    string
	AcceptorGeneID string
}

// BreedingResult is the full, replayable output of Breed.
type BreedingResult struct {
	Child                *genome.DynamicGenome
	Mutations            []MutationRecord
	CrossoverEvents      []CrossoverEvent
	StructuralVariations []StructuralVariationRecord
	GeneConversions      []GeneConversionRecord
}

// ErrInbreeding is the symbolic Inbreeding error kind.
type ErrInbreeding struct {
	JaccardSimilarity float64
}

func (e *ErrInbreeding) Error() string {
	return "breeding rejected: parents are too closely related"
}

// Rates are the contractual operator probabilities. They are exported
// as variables (not constants) so a reimplementation or test harness can
// observe the exact contractual values in one place.
var (
	ChromosomeLevelCrossoverRate = 0.7
	ExtraGeneInheritanceRate     = 0.5

	PointMutationRate  = 0.05
	LargeMutationRate  = 0.0025
	WeightMutationRate = 0.05

	DuplicationRate = 0.03

	DeletionBaseRate                 = 0.02
	DeletionStarvationRate           = 0.15
	DeletionSilencedRate             = 0.08
	DeletionLowWeightRate            = 0.05
	DeletionStarvationCostMultiplier = 1.5
	DeletionEssentialityCeiling      = 0.8

	DeNovoRate = 0.005

	RegulatoryAddRate    = 0.02
	RegulatoryDeleteRate = 0.02
	RegulatoryModifyRate = 0.05

	InversionRate     = 0.005
	TranslocationRate = 0.002

	GeneConversionRate = 0.002

	HGTRate                = 0.05
	HGTMinCooperationHours = 72.0
	HGTMinInteractions     = 20

	InbreedingJaccardThreshold = 0.8
)
