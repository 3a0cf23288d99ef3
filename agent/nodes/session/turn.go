// Package sessionnode contains the node functions of the turn-processing
// graph. Each node takes the shared GraphState plus its collaborators and
// returns the advanced state, keeping the graph wiring itself free of logic.
package sessionnode

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	customerx "github.com/ndezwa/relego-support/agent/customer"
	intelx "github.com/ndezwa/relego-support/agent/intel"
)

var (
	ErrInvalidIdentity = fmt.Errorf("%w: customer identity is empty", contractx.ErrMalformedInput)
)

type GraphInput struct {
	Identity string
	Query    string
	Response string
	Producer string
}

// TurnResult is what one processed turn reports back to the caller.
type TurnResult struct {
	Score    int                  `json:"score"`
	Status   customerx.LeadStatus `json:"status"`
	Signals  intelx.Signals       `json:"signals"`
	Escalate bool                 `json:"escalate"`
}

type GraphState struct {
	Identity string
	Query    string
	Response string
	Producer string
	Now      time.Time

	Signals intelx.Signals
	Record  *customerx.Record

	Escalate bool
}

// ValidateTurn normalizes the inbound turn. An empty identity is rejected;
// an empty utterance is allowed and simply carries no signals.
func ValidateTurn(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	identity := strings.TrimSpace(in.Identity)
	if identity == "" {
		return nil, ErrInvalidIdentity
	}

	producer := strings.TrimSpace(in.Producer)
	if producer == "" {
		producer = "triage"
	}

	return &GraphState{
		Identity: identity,
		Query:    in.Query,
		Response: in.Response,
		Producer: producer,
		Now:      nowFn().UTC(),
	}, nil
}
