package decision

import (
	"context"
	"sync"
	"time"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/ports"
	"github.com/axobase/egde/strategy"
)

// Engine implements the decision algorithm: rate-limit, filter,
// prompt, call the LLM port, parse, reconcile against the candidate list,
// and fall back on failure or timeout.
type Engine struct {
	LLM                 ports.LLM
	Clock               ports.Clock
	MinDecisionInterval time.Duration
	MaxDeliberationTime time.Duration

	mu           sync.Mutex
	lastDecision map[string]time.Time
}

// NewEngine builds an Engine with the contractual defaults.
func NewEngine(llm ports.LLM, clock ports.Clock) *Engine {
	return &Engine{
		LLM:                 llm,
		Clock:               clock,
		MinDecisionInterval: DefaultMinDecisionInterval,
		MaxDeliberationTime: DefaultMaxDeliberationTime,
		lastDecision:        make(map[string]time.Time),
	}
}

// Decide runs the decision algorithm for agentID against the given
// catalogue, constrained by p. It returns ports.ErrRateLimited if called
// again within MinDecisionInterval of the previous call for this agent.
func (e *Engine) Decide(ctx context.Context, agentID string, p Perception, catalogue []strategy.Strategy) (Decision, error) {
	if err := e.checkRateLimit(agentID); err != nil {
		return Decision{}, err
	}

	candidates := strategy.Candidates(catalogue, strategyContext(p))
	if len(candidates) == 0 {
		return emergencyFallback(), nil
	}
	if len(candidates) > candidateTopN {
		candidates = candidates[:candidateTopN]
	}

	prompt := buildPrompt(p, candidates)

	deliberateCtx, cancel := context.WithTimeout(ctx, e.MaxDeliberationTime)
	defer cancel()

	text, err := e.LLM.Think(deliberateCtx, prompt, ports.LLMOptions{
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
		Timeout:     e.MaxDeliberationTime,
	})
	if err != nil {
		return fallbackDecision(candidates[0]), nil
	}

	parsed := parseResponse(text)
	if !parsed.ok {
		return fallbackDecision(candidates[0]), nil
	}

	chosen, found := findCandidate(candidates, parsed.strategyID)
	if !found {
		chosen = candidates[0]
	}

	alternatives := make([]string, 0, len(candidates)-1)
	for _, c := range candidates {
		if c.Strategy.ID != chosen.Strategy.ID {
			alternatives = append(alternatives, c.Strategy.ID)
		}
	}

	reasoning := parsed.reasoning
	if reasoning == "" {
		reasoning = "LLM selection with no stated reasoning."
	}

	return Decision{
		SelectedStrategy: chosen.Strategy.ID,
		SelectedAction:   ActionFor(chosen.Strategy.ID),
		Reasoning:        reasoning,
		Confidence:       parsed.confidence,
		Alternatives:     alternatives,
		RiskAssessment:   parsed.risk,
	}, nil
}

func (e *Engine) checkRateLimit(agentID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.Clock.Now()
	if last, ok := e.lastDecision[agentID]; ok {
		if now.Sub(last) < e.MinDecisionInterval {
			return ports.ErrRateLimited
		}
	}
	e.lastDecision[agentID] = now
	return nil
}

// fallbackDecision is the on-failure path: the
// top-priority candidate, confidence capped at 0.4 so the caller can
// distinguish a fallback from a genuine LLM decision.
func fallbackDecision(top strategy.Candidate) Decision {
	alternatives := []string{}
	return Decision{
		SelectedStrategy: top.Strategy.ID,
		SelectedAction:   ActionFor(top.Strategy.ID),
		Reasoning:        "Fallback to top-priority candidate after LLM failure or unparseable reply.",
		Confidence:       0.4,
		Alternatives:     alternatives,
		RiskAssessment:   RiskMedium,
	}
}

// emergencyFallback covers the filter-returns-empty case.
func emergencyFallback() Decision {
	return Decision{
		SelectedStrategy: "emergency-survival",
		SelectedAction:   ActionEnterDormancy,
		Reasoning:        "No strategy survived the filter; entering dormancy to conserve resources.",
		Confidence:       0.4,
		RiskAssessment:   RiskLow,
	}
}

func findCandidate(candidates []strategy.Candidate, id string) (strategy.Candidate, bool) {
	for _, c := range candidates {
		if c.Strategy.ID == id {
			return c, true
		}
	}
	return strategy.Candidate{}, false
}

// strategyContext adapts a Perception into the strategy.Context the filter
// and scorer need.
func strategyContext(p Perception) strategy.Context {
	mode := p.Env.Mode
	if mode == "" {
		mode = envstate.ModeNormal
	}
	return strategy.Context{
		Expressed:            p.Expressed,
		AvailableTools:       p.AvailableTools,
		Mode:                 mode,
		Balance:              p.Env.Balance,
		TotalMetabolicCost:   p.TotalMetabolicCost,
		RunwayDays:           p.RunwayDays,
		DaysThriving:         p.DaysThriving,
		RecentDeceptionCount: p.RecentDeceptionCount,
		MarketRisk:           p.MarketRisk,
		ExperienceBonus:      p.ExperienceBonus,
	}
}
