// Package evolution implements the evolution coordinator: the
// per-pair cooperation ledger, genome-aware mate signalling, partner
// evaluation, proposal negotiation, and breeding invocation that feeds two
// genomes through the operator pipeline and epigenetic inheritance.
package evolution

import (
	"fmt"
	"log"

	"github.com/axobase/egde/epigenetics"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/operators"
	"github.com/axobase/egde/ports"
)

// pairKey is an order-independent key for one agent pair.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Coordinator owns the cooperation ledger and the lineage cache for one
// population. It is single-owner like the expression cache: one coordinator
// instance per cooperatively scheduled population, no locking.
type Coordinator struct {
	rng     ports.Rng
	clock   ports.Clock
	ledger  map[string]operators.CooperationRecord
	lineage *Lineage
}

// NewCoordinator wires a coordinator to its injected rng and clock.
func NewCoordinator(rng ports.Rng, clock ports.Clock) *Coordinator {
	return &Coordinator{
		rng:     rng,
		clock:   clock,
		ledger:  make(map[string]operators.CooperationRecord),
		lineage: NewLineage(),
	}
}

// Lineage exposes the coordinator's breeding history, e.g. for insights.
func (c *Coordinator) Lineage() *Lineage { return c.lineage }

// RecordInteraction increments the cooperation ledger for one agent pair.
func (c *Coordinator) RecordInteraction(agentA, agentB string, hours float64, interactions int) {
	key := pairKey(agentA, agentB)
	rec := c.ledger[key]
	rec.Hours += hours
	rec.Interactions += interactions
	c.ledger[key] = rec
}

// CooperationBetween returns the accumulated cooperation for a pair.
func (c *Coordinator) CooperationBetween(agentA, agentB string) operators.CooperationRecord {
	return c.ledger[pairKey(agentA, agentB)]
}

// ExecuteBreeding enforces the inbreeding check, runs the operator
// pipeline, applies epigenetic mark inheritance, and records the child's
// parentage in the lineage cache. It reads both genomes as passed in; it
// takes no lock on either parent and does not pause either parent's survival
// loop while it runs.
func (c *Coordinator) ExecuteBreeding(parentAID string, parentA *genome.DynamicGenome, parentBID string, parentB *genome.DynamicGenome, environmentalStress float64, starvationMode bool) (*operators.BreedingResult, error) {
	ctx := operators.BreedingContext{
		ParentA:             parentA,
		ParentB:             parentB,
		ParentAID:           parentAID,
		ParentBID:           parentBID,
		EnvironmentalStress: environmentalStress,
		StarvationMode:      starvationMode,
		BirthTimestamp:      c.clock.Now().UnixMilli(),
	}
	result, err := operators.Breed(ctx, c.lineage, c.rng)
	if err != nil {
		return nil, fmt.Errorf("breeding %s x %s: %w", parentAID, parentBID, err)
	}

	result.Child.Epigenome = epigenetics.InheritMarks(parentA.Epigenome, parentB.Epigenome, c.rng)
	c.lineage.RecordBirth(result.Child.LineageID, parentAID, parentBID)

	log.Printf("egde: bred %s x %s -> %s (gen %d, %d genes, %d mutations)",
		parentAID, parentBID, result.Child.LineageID, result.Child.Generation,
		result.Child.TotalGeneCount, len(result.Mutations))
	return result, nil
}

// TransferGene runs horizontal gene transfer from donor into recipient,
// gated on the pair's accumulated cooperation.
func (c *Coordinator) TransferGene(recipientID string, recipient *genome.DynamicGenome, donorID string, donor *genome.DynamicGenome) (string, error) {
	cooperation := c.CooperationBetween(recipientID, donorID)
	geneID, err := operators.HorizontalTransfer(recipient, donor, donorID, cooperation, c.rng)
	if err != nil {
		return "", fmt.Errorf("horizontal transfer %s -> %s: %w", donorID, recipientID, err)
	}
	if geneID != "" {
		log.Printf("egde: horizontal transfer %s -> %s acquired gene %s", donorID, recipientID, geneID)
	}
	return geneID, nil
}
