package strategy

// Tool capability identifiers a strategy may require. These name the
// executor capabilities an agent must have wired (an LLM tier, a wallet
// operation, a messaging channel) before a strategy requiring them can
// survive the filter.
const (
	ToolLLMLocal           = "llm-local"
	ToolLLMPremium         = "llm-premium"
	ToolDEXSwap            = "dex-swap"
	ToolStaking            = "staking"
	ToolHumanHiring        = "human-hiring"
	ToolBroadcast          = "broadcast"
	ToolMessaging          = "messaging"
	ToolMemoryStore        = "memory-store"
	ToolInscription        = "inscription"
	ToolWebFetch           = "web-fetch"
	ToolSocialPost         = "social-post"
	ToolWebScrape          = "web-scrape"
	ToolTokenTransfer      = "token-transfer"
	ToolLiquidityProvision = "liquidity-provision"
	ToolRewardClaim        = "reward-claim"
	ToolHumanEvaluation    = "human-evaluation"
	ToolMigration          = "migration"
	ToolMatingProposal     = "mating-proposal"
)
