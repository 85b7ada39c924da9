// Package epigenetics maps environmental pressure onto the genome's
// epigenetic marks: a fixed trigger catalogue fires on an environmental
// snapshot, marks decay and are retained or dropped, and marks are
// inherited (with attenuation) at breeding.
package epigenetics

import (
	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/genome"
)

// retentionFloor is the decayed-strength cutoff below which a mark is
// dropped rather than retained.
const retentionFloor = 0.1

// minPlasticityForMark is the plasticity floor a gene needs before a firing
// trigger creates a mark on it.
const minPlasticityForMark = 0.2

// Trigger is one entry in the fixed catalogue: an environmental predicate
// and the mark template it installs on every sufficiently-plastic gene in
// its target domain.
type Trigger struct {
	Cause        string
	Fires        func(envstate.State) bool
	TargetDomain genome.Domain
	Modification genome.MarkModification
	Strength     float64
	Heritability float64
	Decay        float64
}

// Catalogue is the fixed trigger set: starvation upregulating metabolism,
// prolonged starvation silencing cognition, plus the symmetric
// thriving/stress/social entries.
func Catalogue() []Trigger {
	return []Trigger{
		{
			Cause:        "daysStarving>=3",
			Fires:        func(e envstate.State) bool { return e.DaysStarving >= 3 },
			TargetDomain: genome.DomainMetabolism,
			Modification: genome.MarkUpregulate,
			Strength:     0.6,
			Heritability: 0.3,
			Decay:        0.2,
		},
		{
			Cause:        "daysStarving>=7",
			Fires:        func(e envstate.State) bool { return e.DaysStarving >= 7 },
			TargetDomain: genome.DomainCognition,
			Modification: genome.MarkSilence,
			Strength:     0.8,
			Heritability: 0.1,
			Decay:        0.3,
		},
		{
			Cause:        "daysThriving>=7",
			Fires:        func(e envstate.State) bool { return e.DaysThriving >= 7 },
			TargetDomain: genome.DomainCooperation,
			Modification: genome.MarkUpregulate,
			Strength:     0.4,
			Heritability: 0.4,
			Decay:        0.15,
		},
		{
			Cause:        "stressLevel>=0.7",
			Fires:        func(e envstate.State) bool { return e.StressLevel >= 0.7 },
			TargetDomain: genome.DomainStressResponse,
			Modification: genome.MarkActivate,
			Strength:     0.7,
			Heritability: 0.2,
			Decay:        0.25,
		},
		{
			Cause:        "recentDeceptionCount>=1",
			Fires:        func(e envstate.State) bool { return e.RecentDeceptionCount >= 1 },
			TargetDomain: genome.DomainTrustModel,
			Modification: genome.MarkDownregulate,
			Strength:     0.5,
			Heritability: 0.15,
			Decay:        0.2,
		},
		{
			Cause:        "cooperationCount>=5",
			Fires:        func(e envstate.State) bool { return e.CooperationCount >= 5 },
			TargetDomain: genome.DomainCommunication,
			Modification: genome.MarkUpregulate,
			Strength:     0.3,
			Heritability: 0.3,
			Decay:        0.1,
		},
	}
}
