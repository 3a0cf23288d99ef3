package sessionnode

import (
	"fmt"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

func FinalizeResult(in *GraphState) (TurnResult, error) {
	if in == nil || in.Record == nil {
		return TurnResult{}, fmt.Errorf("%w: graph record is nil", contractx.ErrValidation)
	}

	return TurnResult{
		Score:    in.Record.LeadScore,
		Status:   in.Record.LeadStatus,
		Signals:  in.Signals,
		Escalate: in.Escalate,
	}, nil
}
