package expression

// applyEpistasis mutates values (geneID -> post-composition expressed
// value) in place, applying each interaction in order using the epistatic
// gene's CURRENT value as the gate:
//
//   - suppressive: if the epistatic gene's value > 0.5, the hypostatic gene
//     is forced to 0 (silenced) for penetrance fraction of its effect.
//   - dominant: the hypostatic gene's value is pulled toward the epistatic
//     gene's value, scaled by penetrance.
//   - recessive: the hypostatic gene only keeps its own value when the
//     epistatic gene's value is low; otherwise it is damped toward zero.
//   - synergistic: both genes are multiplied by the same boost, which grows
//     with the epistatic gene's value and the interaction's penetrance.
//   - antagonistic: the hypostatic gene is reduced proportionally to the
//     epistatic gene's value and the interaction's penetrance.
func applyEpistasis(values map[string]float64, interactions []EpistaticInteraction) {
	for _, in := range interactions {
		epi, hasEpi := values[in.EpistaticGeneID]
		hypo, hasHypo := values[in.HypostaticGeneID]
		if !hasEpi || !hasHypo {
			continue
		}
		p := in.Penetrance

		switch in.Relationship {
		case EpistasisSuppressive:
			if epi > 0.5 {
				values[in.HypostaticGeneID] = hypo * (1 - p)
			}
		case EpistasisDominant:
			values[in.HypostaticGeneID] = hypo + (epi-hypo)*p
		case EpistasisRecessive:
			if epi > 0.5 {
				values[in.HypostaticGeneID] = hypo * (1 - p)
			}
		case EpistasisSynergistic:
			boost := 1 + p*epi*0.3
			values[in.HypostaticGeneID] = clampRange(hypo*boost, 0, 3)
			values[in.EpistaticGeneID] = clampRange(epi*boost, 0, 3)
		case EpistasisAntagonistic:
			values[in.HypostaticGeneID] = clampRange(hypo*(1-p*epi), 0, 3)
		}
	}
}
