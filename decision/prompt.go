package decision

import (
	"fmt"
	"sort"
	"strings"

	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/strategy"
)

// buildPrompt renders the structured decision prompt:
// the agent's top expressed traits, the current environmental state, each
// candidate strategy with its scores, the top opportunities, and recent
// memory, ending in an instruction to reply in the canonical block.
func buildPrompt(p Perception, candidates []strategy.Candidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an autonomous agent (%s) deciding your next action.\n\n", p.AgentID)

	b.WriteString("Top expressed traits:\n")
	for _, g := range topTraits(p.Expressed.Genes, traitTopN) {
		fmt.Fprintf(&b, "- %s: %.3f\n", g.Name, g.ExpressedValue)
	}

	fmt.Fprintf(&b, "\nEnvironment: balance=%.2f mode=%s daysStarving=%.1f daysThriving=%.1f stress=%.2f runway=%.1fd\n",
		p.Env.Balance, p.Env.Mode, p.Env.DaysStarving, p.Env.DaysThriving, p.Env.StressLevel, p.RunwayDays)

	b.WriteString("\nCandidate strategies:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- %s (%s): genomeMatch=%.2f success=%.2f risk=%.2f complexity=%.2f payoff=%.2f\n",
			c.Strategy.ID, c.Strategy.Category, c.GenomeMatch, c.EstimatedSuccess, c.Strategy.Risk, c.Strategy.Complexity, c.Strategy.TypicalPayoff)
	}

	if opps := topOpportunities(p.Opportunities, opportunityTopN); len(opps) > 0 {
		b.WriteString("\nTop opportunities:\n")
		for _, o := range opps {
			fmt.Fprintf(&b, "- %s (est. value %.2f)\n", o.Description, o.EstimatedValue)
		}
	}

	if mem := recentMemory(p.RecentMemory, memoryEventTopN); len(mem) > 0 {
		b.WriteString("\nRecent memory:\n")
		for _, m := range mem {
			fmt.Fprintf(&b, "- %s: %s\n", m.Timestamp.Format("2006-01-02T15:04:05Z"), m.Summary)
		}
	}

	b.WriteString("\nReply in exactly this block, choosing one strategy id from the candidates above:\n")
	b.WriteString("STRATEGY_ID: <id>\n")
	b.WriteString("ACTION: <short action description>\n")
	b.WriteString("CONFIDENCE: <0.0-1.0>\n")
	b.WriteString("REASONING: <one sentence>\n")
	b.WriteString("RISK_ASSESSMENT: <low|medium|high>\n")

	return b.String()
}

// topTraits returns the n expressed genes with the highest expressed value.
func topTraits(genes []expression.ExpressedGene, n int) []expression.ExpressedGene {
	sorted := append([]expression.ExpressedGene{}, genes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ExpressedValue > sorted[j].ExpressedValue })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func topOpportunities(opps []Opportunity, n int) []Opportunity {
	sorted := append([]Opportunity{}, opps...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].EstimatedValue > sorted[j].EstimatedValue })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func recentMemory(mem []MemoryEvent, n int) []MemoryEvent {
	sorted := append([]MemoryEvent{}, mem...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp.After(sorted[j].Timestamp) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
