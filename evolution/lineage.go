package evolution

// parentage records the two parents of one bred agent.
type parentage struct {
	parentA string
	parentB string
}

// Lineage is the coordinator's in-memory breeding history. It implements
// operators.LineageCache: two agents are kin when walking each one's
// recorded ancestors up to maxGenerations reaches a common id.
type Lineage struct {
	parents map[string]parentage
}

// NewLineage returns an empty lineage cache.
func NewLineage() *Lineage {
	return &Lineage{parents: make(map[string]parentage)}
}

// RecordBirth stores childID's parents for later kinship checks.
func (l *Lineage) RecordBirth(childID, parentAID, parentBID string) {
	l.parents[childID] = parentage{parentA: parentAID, parentB: parentBID}
}

// ancestorsWithin collects agentID and every recorded ancestor reachable in
// at most maxGenerations steps.
func (l *Lineage) ancestorsWithin(agentID string, maxGenerations int) map[string]bool {
	seen := map[string]bool{agentID: true}
	frontier := []string{agentID}
	for depth := 0; depth < maxGenerations; depth++ {
		var next []string
		for _, id := range frontier {
			p, ok := l.parents[id]
			if !ok {
				continue
			}
			for _, anc := range []string{p.parentA, p.parentB} {
				if anc == "" || seen[anc] {
					continue
				}
				seen[anc] = true
				next = append(next, anc)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return seen
}

// WithinGenerations reports whether the two agents share an ancestor within
// maxGenerations on both sides.
func (l *Lineage) WithinGenerations(agentAID, agentBID string, maxGenerations int) bool {
	ancestorsA := l.ancestorsWithin(agentAID, maxGenerations)
	for id := range l.ancestorsWithin(agentBID, maxGenerations) {
		if ancestorsA[id] {
			return true
		}
	}
	return false
}

// GenerationsToCommonAncestor returns the smallest window within which the
// two agents share an ancestor, or -1 when none is recorded. Used by
// partner evaluation to turn lineage distance into a kinship score.
func (l *Lineage) GenerationsToCommonAncestor(agentAID, agentBID string, maxGenerations int) int {
	for w := 0; w <= maxGenerations; w++ {
		if l.WithinGenerations(agentAID, agentBID, w) {
			return w
		}
	}
	return -1
}
