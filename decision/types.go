// Package decision builds a prompt constrained by the strategy filter,
// calls the LLM port, parses its reply into a canonical decision block, and
// falls back to the top-priority candidate on parse failure or timeout.
package decision

import (
	"time"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
)

// ActionType is the fixed action vocabulary strategy ids map
// onto.
type ActionType string

const (
	ActionEnterDormancy    ActionType = "enter-dormancy"
	ActionThinkLocal       ActionType = "think-local"
	ActionThinkPremium     ActionType = "think-premium"
	ActionSwap             ActionType = "swap"
	ActionStake            ActionType = "stake"
	ActionHireHuman        ActionType = "hire-human"
	ActionBroadcast        ActionType = "broadcast"
	ActionSendMessage      ActionType = "send-message"
	ActionProposeMating    ActionType = "propose-mating"
	ActionAcceptMating     ActionType = "accept-mating"
	ActionStoreMemory      ActionType = "store-memory"
	ActionInscribe         ActionType = "inscribe"
	ActionFetch            ActionType = "fetch"
	ActionPost             ActionType = "post"
	ActionScrape           ActionType = "scrape"
	ActionTransfer         ActionType = "transfer"
	ActionMigrate          ActionType = "migrate"
	ActionProvideLiquidity ActionType = "provide-liquidity"
	ActionClaimRewards     ActionType = "claim-rewards"
	ActionEvaluateHuman    ActionType = "evaluate-human"
	ActionExitDormancy     ActionType = "exit-dormancy"
)

// minDecisionInterval and maxDeliberationTime are the contractual
// defaults; both are overridable per Engine.
const (
	DefaultMinDecisionInterval = 60 * time.Second
	DefaultMaxDeliberationTime = 30 * time.Second
)

// llmTemperature and llmMaxTokens are the fixed LLM call parameters.
const (
	llmTemperature = 0.7
	llmMaxTokens   = 2000
)

// candidateTopN is how many ranked candidates the engine keeps before
// prompting.
const candidateTopN = 7

// opportunityTopN and memoryEventTopN are how many opportunities/memory
// events included in the prompt.
const (
	opportunityTopN = 3
	memoryEventTopN = 5
)

// traitTopN is how many of the agent's top expressed traits the prompt
// lists.
const traitTopN = 10

// Opportunity is one externally-observed chance to act, ranked by the
// caller before being handed to Perception.
type Opportunity struct {
	Description    string
	EstimatedValue float64 // stable units
}

// MemoryEvent is one entry from the agent's recent memory, most-recent
// first.
type MemoryEvent struct {
	Timestamp time.Time
	Summary   string
}

// Perception is everything the decision engine needs for one Decide call.
type Perception struct {
	AgentID              string
	Expressed            expression.ExpressedGenome
	Env                  envstate.State
	TotalMetabolicCost   float64
	AvailableTools       map[string]bool
	MarketRisk           float64
	ExperienceBonus      float64
	RunwayDays           float64
	DaysThriving         float64
	RecentDeceptionCount float64
	Opportunities        []Opportunity
	RecentMemory         []MemoryEvent
}

// RiskAssessment is a short symbolic label the LLM or the fallback path
// assigns a decision.
type RiskAssessment string

const (
	RiskLow    RiskAssessment = "low"
	RiskMedium RiskAssessment = "medium"
	RiskHigh   RiskAssessment = "high"
)

// Decision is the full output of one Decide call.
type Decision struct {
	SelectedStrategy string
	SelectedAction   ActionType
	Reasoning        string
	Confidence       float64 // [0,1]
	Alternatives     []string
	RiskAssessment   RiskAssessment
}
