package sessionnode

import (
	"fmt"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	intelx "github.com/ndezwa/relego-support/agent/intel"
)

func ExtractSignals(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.Signals = intelx.Extract(in.Query)
	return in, nil
}
