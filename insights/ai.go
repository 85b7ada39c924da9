package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/axobase/egde/ports"
)

// Narrator turns an insight summary into prose through the LLM port.
type Narrator struct {
	llm ports.LLM
}

// NewNarrator wraps an LLM port.
func NewNarrator(llm ports.LLM) *Narrator {
	return &Narrator{llm: llm}
}

// Narrate asks the LLM for a short analysis of the population's state.
func (n *Narrator) Narrate(ctx context.Context, summary InsightSummary) (string, error) {
	data, err := json.MarshalIndent(summary.Population, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Analyze this population of evolving autonomous agents and summarize its state in markdown:

%s

Cover: selection pressure (is fitness climbing or stagnant), genetic diversity (is the gene pool narrowing), and what the mutation-rate controller is likely to do next. Three short paragraphs, no preamble.`, string(data))

	narrative, err := n.llm.Think(ctx, prompt, ports.LLMOptions{
		Temperature: 0.7,
		MaxTokens:   800,
		Timeout:     30 * time.Second,
	})
	if err != nil {
		return "", err
	}
	if narrative == "" {
		return "", fmt.Errorf("no analysis generated")
	}
	return narrative, nil
}
