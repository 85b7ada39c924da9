package decision

// strategyAction is the fixed strategy-to-action table. A strategy id absent from this
// table (any future catalogue addition) falls back to ActionStoreMemory, a
// no-op-ish action that still lets the agent record what it considered.
var strategyAction = map[string]ActionType{
	"enter-dormancy":            ActionEnterDormancy,
	"exit-dormancy":             ActionExitDormancy,
	"emergency-liquidation":     ActionSwap,
	"migrate-to-safety":         ActionMigrate,
	"think-local-opportunity":   ActionThinkLocal,
	"think-premium-opportunity": ActionThinkPremium,
	"dex-swap-arbitrage":        ActionSwap,
	"stake-idle-capital":        ActionStake,
	"provide-liquidity-pool":    ActionProvideLiquidity,
	"claim-pending-rewards":     ActionClaimRewards,
	"hire-human-labor":          ActionHireHuman,
	"broadcast-presence":        ActionBroadcast,
	"send-direct-message":       ActionSendMessage,
	"post-public-content":       ActionPost,
	"propose-mating-signal":     ActionProposeMating,
	"accept-mating-proposal":    ActionAcceptMating,
	"consolidate-memory":        ActionStoreMemory,
	"scrape-market-data":        ActionScrape,
	"daily-inscription":         ActionInscribe,
	"evaluate-human-worker":     ActionEvaluateHuman,
	"defensive-transfer":        ActionTransfer,
	"fetch-threat-intel":        ActionFetch,
}

// expectedCost is the fixed expected-cost table (stable units) attached
// to each resolved action; negative values are expected income.
var expectedCost = map[ActionType]float64{
	ActionEnterDormancy:    0.0,
	ActionExitDormancy:     0.0,
	ActionThinkLocal:       0.01,
	ActionThinkPremium:     0.1,
	ActionSwap:             0.02,
	ActionStake:            0.01,
	ActionHireHuman:        2.0,
	ActionBroadcast:        0.005,
	ActionSendMessage:      0.002,
	ActionProposeMating:    0.05,
	ActionAcceptMating:     0.05,
	ActionStoreMemory:      0.0,
	ActionInscribe:         0.1,
	ActionFetch:            0.01,
	ActionPost:             0.01,
	ActionScrape:           0.02,
	ActionTransfer:         0.0,
	ActionMigrate:          0.2,
	ActionProvideLiquidity: 0.05,
	ActionClaimRewards:     -0.1,
	ActionEvaluateHuman:    0.01,
}

// ActionFor resolves strategyID to its fixed ActionType.
func ActionFor(strategyID string) ActionType {
	if a, ok := strategyAction[strategyID]; ok {
		return a
	}
	return ActionStoreMemory
}

// ExpectedCost returns the fixed expected stable-unit cost of action.
func ExpectedCost(action ActionType) float64 {
	return expectedCost[action]
}
