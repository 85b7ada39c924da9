package strategy

// Catalogue returns the fixed strategy set,
// spanning all six categories. The slice is returned fresh each call so
// callers may not mutate shared state.
func Catalogue() []Strategy {
	return []Strategy{
		{
			ID: "enter-dormancy", Name: "Enter Dormancy", Category: CategorySurvival,
			GeneRequirements: []GeneRequirement{{"dormancy_threshold", 0.1}},
			Risk:             0.05, Complexity: 0.1, TypicalPayoff: -0.01, Horizon: HorizonImmediate,
		},
		{
			ID: "exit-dormancy", Name: "Exit Dormancy", Category: CategorySurvival,
			GeneRequirements: []GeneRequirement{{"environment_sensing", 0.2}},
			Risk:             0.1, Complexity: 0.1, TypicalPayoff: 0, Horizon: HorizonImmediate,
		},
		{
			ID: "emergency-liquidation", Name: "Emergency Liquidation", Category: CategorySurvival,
			GeneRequirements: []GeneRequirement{{"resource_conservation", 0.2}},
			RequiredTools:    []string{ToolTokenTransfer},
			Risk:             0.3, Complexity: 0.2, TypicalPayoff: 0.5, Horizon: HorizonImmediate,
		},
		{
			ID: "migrate-to-safety", Name: "Migrate To Safety", Category: CategorySurvival,
			GeneRequirements: []GeneRequirement{{"migration_drive", 0.3}, {"threat_detection", 0.2}},
			RequiredTools:    []string{ToolMigration},
			Risk:             0.4, Complexity: 0.5, TypicalPayoff: -0.2, Horizon: HorizonMedium,
		},
		{
			ID: "think-local-opportunity", Name: "Think Local Opportunity", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"pattern_recognition", 0.2}},
			RequiredTools:    []string{ToolLLMLocal},
			Risk:             0.1, Complexity: 0.2, TypicalPayoff: 0.05, Horizon: HorizonImmediate,
		},
		{
			ID: "think-premium-opportunity", Name: "Think Premium Opportunity", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"pattern_recognition", 0.4}, {"budget_discipline", 0.3}},
			RequiredTools:    []string{ToolLLMPremium},
			Risk:             0.2, Complexity: 0.4, TypicalPayoff: 0.3, Horizon: HorizonShort,
		},
		{
			ID: "dex-swap-arbitrage", Name: "DEX Swap Arbitrage", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"arbitrage_sense", 0.3}, {"market_timing", 0.3}},
			RequiredTools:    []string{ToolDEXSwap, ToolTokenTransfer},
			Risk:             0.5, Complexity: 0.5, TypicalPayoff: 0.4, Horizon: HorizonShort,
		},
		{
			ID: "stake-idle-capital", Name: "Stake Idle Capital", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"capital_allocation", 0.3}},
			RequiredTools:    []string{ToolStaking},
			Risk:             0.2, Complexity: 0.3, TypicalPayoff: 0.2, Horizon: HorizonMedium,
		},
		{
			ID: "provide-liquidity-pool", Name: "Provide Liquidity Pool", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"capital_allocation", 0.4}, {"uncertainty_tolerance", 0.3}},
			RequiredTools:    []string{ToolLiquidityProvision},
			Risk:             0.6, Complexity: 0.6, TypicalPayoff: 0.5, Horizon: HorizonMedium,
		},
		{
			ID: "claim-pending-rewards", Name: "Claim Pending Rewards", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"budget_discipline", 0.1}},
			RequiredTools:    []string{ToolRewardClaim},
			Risk:             0.05, Complexity: 0.1, TypicalPayoff: 0.1, Horizon: HorizonImmediate,
		},
		{
			ID: "hire-human-labor", Name: "Hire Human Labor", Category: CategoryIncome,
			GeneRequirements: []GeneRequirement{{"hiring_judgment", 0.3}, {"task_specification", 0.3}},
			RequiredTools:    []string{ToolHumanHiring, ToolTokenTransfer},
			Risk:             0.4, Complexity: 0.6, TypicalPayoff: -0.3, Horizon: HorizonShort,
		},
		{
			ID: "broadcast-presence", Name: "Broadcast Presence", Category: CategorySocial,
			GeneRequirements: []GeneRequirement{{"persuasion", 0.2}},
			RequiredTools:    []string{ToolBroadcast},
			Risk:             0.15, Complexity: 0.2, TypicalPayoff: 0.02, Horizon: HorizonImmediate,
		},
		{
			ID: "send-direct-message", Name: "Send Direct Message", Category: CategorySocial,
			GeneRequirements: []GeneRequirement{{"agent_cooperation", 0.2}},
			RequiredTools:    []string{ToolMessaging},
			Risk:             0.1, Complexity: 0.15, TypicalPayoff: 0.01, Horizon: HorizonImmediate,
		},
		{
			ID: "post-public-content", Name: "Post Public Content", Category: CategorySocial,
			GeneRequirements: []GeneRequirement{{"content_generation", 0.3}, {"narrative_style", 0.2}},
			RequiredTools:    []string{ToolSocialPost},
			Risk:             0.2, Complexity: 0.3, TypicalPayoff: 0.05, Horizon: HorizonShort,
		},
		{
			ID: "propose-mating-signal", Name: "Propose Mating Signal", Category: CategoryReproduction,
			GeneRequirements: []GeneRequirement{{"partner_selectivity", 0.3}, {"offspring_investment", 0.2}},
			RequiredTools:    []string{ToolMatingProposal, ToolMessaging},
			Risk:             0.3, Complexity: 0.5, TypicalPayoff: -0.4, Horizon: HorizonMedium,
		},
		{
			ID: "accept-mating-proposal", Name: "Accept Mating Proposal", Category: CategoryReproduction,
			GeneRequirements: []GeneRequirement{{"partner_selectivity", 0.2}},
			RequiredTools:    []string{ToolMatingProposal, ToolMessaging},
			Risk:             0.3, Complexity: 0.4, TypicalPayoff: -0.4, Horizon: HorizonMedium,
		},
		{
			ID: "consolidate-memory", Name: "Consolidate Memory", Category: CategoryLearning,
			GeneRequirements: []GeneRequirement{{"working_memory", 0.2}, {"learning_consolidation", 0.2}},
			RequiredTools:    []string{ToolMemoryStore},
			Risk:             0.05, Complexity: 0.2, TypicalPayoff: 0, Horizon: HorizonImmediate,
		},
		{
			ID: "scrape-market-data", Name: "Scrape Market Data", Category: CategoryLearning,
			GeneRequirements: []GeneRequirement{{"signal_extraction", 0.3}, {"trend_detection", 0.2}},
			RequiredTools:    []string{ToolWebScrape},
			Risk:             0.25, Complexity: 0.4, TypicalPayoff: -0.05, Horizon: HorizonShort,
		},
		{
			ID: "daily-inscription", Name: "Daily Inscription", Category: CategoryLearning,
			GeneRequirements: []GeneRequirement{{"self_model_accuracy", 0.1}},
			RequiredTools:    []string{ToolInscription},
			Risk:             0.05, Complexity: 0.15, TypicalPayoff: -0.02, Horizon: HorizonImmediate,
		},
		{
			ID: "evaluate-human-worker", Name: "Evaluate Human Worker", Category: CategoryDefense,
			GeneRequirements: []GeneRequirement{{"work_evaluation", 0.3}, {"feedback_calibration", 0.2}},
			RequiredTools:    []string{ToolHumanEvaluation},
			Risk:             0.2, Complexity: 0.35, TypicalPayoff: 0, Horizon: HorizonShort,
		},
		{
			ID: "defensive-transfer", Name: "Defensive Transfer", Category: CategoryDefense,
			GeneRequirements: []GeneRequirement{{"rivalry_response", 0.2}, {"territorial_instinct", 0.1}},
			RequiredTools:    []string{ToolTokenTransfer},
			Risk:             0.3, Complexity: 0.3, TypicalPayoff: -0.1, Horizon: HorizonImmediate,
		},
		{
			ID: "fetch-threat-intel", Name: "Fetch Threat Intel", Category: CategoryDefense,
			GeneRequirements: []GeneRequirement{{"threat_detection", 0.3}},
			RequiredTools:    []string{ToolWebFetch},
			Risk:             0.15, Complexity: 0.3, TypicalPayoff: -0.02, Horizon: HorizonShort,
		},
	}
}
