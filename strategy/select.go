package strategy

// Candidates filters the catalogue for ctx and returns surviving strategies
// ranked by descending priority, the single entry point the
// decision engine calls before truncating to its top-7 candidate list.
func Candidates(catalogue []Strategy, ctx Context) []Candidate {
	return Rank(Filter(catalogue, ctx), ctx)
}
