package evolution

import (
	"fmt"

	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genome"
)

// MatingProposal is one agent's offer to breed, carrying its signal and a
// concrete parental-investment commitment in [0,1].
type MatingProposal struct {
	ProposalID        string       `json:"proposalId"`
	FromAgentID       string       `json:"fromAgentId"`
	ToAgentID         string       `json:"toAgentId"`
	Signal            MatingSignal `json:"signal"`
	OfferedInvestment float64      `json:"offeredInvestment"`
	Round             int          `json:"round"`
}

// ProposalOutcome is what RespondToProposal decides.
type ProposalOutcome string

const (
	ProposalAccepted  ProposalOutcome = "accepted"
	ProposalRejected  ProposalOutcome = "rejected"
	ProposalCountered ProposalOutcome = "countered"
)

// ProposalResponse is the receiving agent's answer, including a
// counter-offer when the receiver wants more investment than was offered.
type ProposalResponse struct {
	ProposalID        string          `json:"proposalId"`
	Outcome           ProposalOutcome `json:"outcome"`
	Evaluation        Evaluation      `json:"evaluation"`
	CounterInvestment float64         `json:"counterInvestment,omitempty"`
	Reason            string          `json:"reason"`
}

// maxNegotiationRounds bounds counter-offer ping-pong; past it a marginal
// proposal is simply rejected.
const maxNegotiationRounds = 3

// ProposeMating builds a proposal from the proposer's genome and
// expression. The offered investment is driven by the offspring_investment
// gene, the same trait the receiver will weigh it against.
func (c *Coordinator) ProposeMating(fromID, toID string, g *genome.DynamicGenome, res *expression.Result) MatingProposal {
	signal := c.GenerateMatingSignal(fromID, g, res)
	return MatingProposal{
		ProposalID:        fmt.Sprintf("mate-%s-%s-%d", fromID, toID, signal.Timestamp),
		FromAgentID:       fromID,
		ToAgentID:         toID,
		Signal:            signal,
		OfferedInvestment: signal.OfferedInvestment,
		Round:             1,
	}
}

// RespondToProposal evaluates a proposal from the receiver's point of view.
// A negotiate verdict becomes a counter-offer demanding the midpoint
// between what was offered and the receiver's own investment disposition;
// once rounds are exhausted, marginal proposals are rejected.
func (c *Coordinator) RespondToProposal(myID string, myGenome *genome.DynamicGenome, myExpressed *expression.Result, proposal MatingProposal) ProposalResponse {
	ev := c.EvaluatePartner(myID, myGenome, myExpressed, proposal.Signal)

	resp := ProposalResponse{
		ProposalID: proposal.ProposalID,
		Evaluation: ev,
		Reason:     ev.Reason,
	}
	switch ev.Decision {
	case DecisionAccept:
		resp.Outcome = ProposalAccepted
	case DecisionNegotiate:
		if proposal.Round >= maxNegotiationRounds {
			resp.Outcome = ProposalRejected
			resp.Reason = "negotiation rounds exhausted"
			break
		}
		myInvestment := normTrait(traitValue(myExpressed.Expressed, "offspring_investment"))
		counter := (proposal.OfferedInvestment + myInvestment) / 2
		if counter <= proposal.OfferedInvestment {
			// The offer already meets what this agent would ask for.
			resp.Outcome = ProposalAccepted
			resp.Reason = "offered investment sufficient"
			break
		}
		resp.Outcome = ProposalCountered
		resp.CounterInvestment = counter
	default:
		resp.Outcome = ProposalRejected
	}
	return resp
}

// AcceptCounter folds a counter-offer back into the original proposal for
// the next negotiation round, raising the committed investment.
func AcceptCounter(proposal MatingProposal, resp ProposalResponse) MatingProposal {
	next := proposal
	next.OfferedInvestment = resp.CounterInvestment
	next.Round++
	return next
}
