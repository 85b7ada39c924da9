package epigenetics

import (
	"sort"

	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

// strengthAttenuationOnInheritance is the 20% reduction applied
// to an inherited mark's strength.
const strengthAttenuationOnInheritance = 0.8

// InheritMarks implements inheritance-at-breeding: each mark
// on each parent is inherited independently with probability equal to its
// own heritability; an inherited mark's strength is reduced by 20%;
// collisions (both parents contribute a mark for the same gene) are
// resolved by randomly choosing a primary parent.
func InheritMarks(parentA, parentB []genome.EpigeneticMark, rng ports.Rng) []genome.EpigeneticMark {
	fromA := rollInheritance(parentA, rng)
	fromB := rollInheritance(parentB, rng)

	merged := make(map[string]genome.EpigeneticMark, len(fromA)+len(fromB))
	for _, m := range fromA {
		merged[m.TargetGeneID] = m
	}
	for _, m := range fromB {
		if existing, collides := merged[m.TargetGeneID]; collides {
			if rng.NextFloat64() < 0.5 {
				merged[m.TargetGeneID] = m
			} else {
				merged[m.TargetGeneID] = existing
			}
			continue
		}
		merged[m.TargetGeneID] = m
	}

	out := make([]genome.EpigeneticMark, 0, len(merged))
	for _, m := range merged {
		out = append(out, m)
	}
	// Map iteration order is not stable; breeding must be bit-for-bit
	// reproducible, so the child's mark list is ordered by target gene id.
	sort.Slice(out, func(i, j int) bool { return out[i].TargetGeneID < out[j].TargetGeneID })
	return out
}

func rollInheritance(marks []genome.EpigeneticMark, rng ports.Rng) []genome.EpigeneticMark {
	var out []genome.EpigeneticMark
	for _, m := range marks {
		if rng.NextFloat64() >= m.Heritability {
			continue
		}
		inherited := m
		inherited.Strength = inherited.Strength * strengthAttenuationOnInheritance
		inherited.Clamp()
		out = append(out, inherited)
	}
	return out
}
