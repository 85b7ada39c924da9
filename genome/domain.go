package genome

// Domain is the closed enumeration of functional domains a gene can belong
// to.
type Domain string

const (
	DomainMetabolism         Domain = "metabolism"
	DomainPerception         Domain = "perception"
	DomainCognition          Domain = "cognition"
	DomainMemory             Domain = "memory"
	DomainResourceManagement Domain = "resource-management"
	DomainRiskAssessment     Domain = "risk-assessment"
	DomainTrading            Domain = "trading"
	DomainIncomeStrategy     Domain = "income-strategy"
	DomainOnChainOp          Domain = "on-chain-op"
	DomainWebNavigation      Domain = "web-navigation"
	DomainContentCreation    Domain = "content-creation"
	DomainDataAnalysis       Domain = "data-analysis"
	DomainAPIUtilization     Domain = "api-utilization"
	DomainSocialMedia        Domain = "social-media"
	DomainCooperation        Domain = "cooperation"
	DomainCompetition        Domain = "competition"
	DomainCommunication      Domain = "communication"
	DomainTrustModel         Domain = "trust-model"
	DomainMateSelection      Domain = "mate-selection"
	DomainParentalInvestment Domain = "parental-investment"
	DomainHumanHiring        Domain = "human-hiring"
	DomainHumanCommunication Domain = "human-communication"
	DomainHumanEvaluation    Domain = "human-evaluation"
	DomainStressResponse     Domain = "stress-response"
	DomainAdaptation         Domain = "adaptation"
	DomainDormancy           Domain = "dormancy"
	DomainMigration          Domain = "migration"
	DomainSelfModel          Domain = "self-model"
	DomainStrategyEval       Domain = "strategy-evaluation"
	DomainLearning           Domain = "learning"
	DomainPlanning           Domain = "planning"
	DomainNoveltySeeking     Domain = "novelty-seeking"
	DomainRegulatory         Domain = "regulatory"
)

// allDomains is used by de-novo birth to pick a random valid domain.
var allDomains = []Domain{
	DomainMetabolism, DomainPerception, DomainCognition, DomainMemory,
	DomainResourceManagement, DomainRiskAssessment, DomainTrading,
	DomainIncomeStrategy, DomainOnChainOp, DomainWebNavigation,
	DomainContentCreation, DomainDataAnalysis, DomainAPIUtilization,
	DomainSocialMedia, DomainCooperation, DomainCompetition,
	DomainCommunication, DomainTrustModel, DomainMateSelection,
	DomainParentalInvestment, DomainHumanHiring, DomainHumanCommunication,
	DomainHumanEvaluation, DomainStressResponse, DomainAdaptation,
	DomainDormancy, DomainMigration, DomainSelfModel, DomainStrategyEval,
	DomainLearning, DomainPlanning, DomainNoveltySeeking, DomainRegulatory,
}

// AllDomains returns the closed set of valid gene domains.
func AllDomains() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

func (d Domain) valid() bool {
	for _, v := range allDomains {
		if v == d {
			return true
		}
	}
	return false
}

// essentialChromosomeDomains lists the domains whose chromosome can never be
// emptied: metabolism, perception/cognition, stress
// response, regulatory control.
var essentialChromosomeDomains = map[Domain]bool{
	DomainMetabolism:     true,
	DomainPerception:     true,
	DomainCognition:      true,
	DomainStressResponse: true,
	DomainRegulatory:     true,
}
