package sessionnode

import (
	"fmt"

	"github.com/google/uuid"

	contractx "github.com/ndezwa/relego-support/agent/contract"
	customerx "github.com/ndezwa/relego-support/agent/customer"
	intelx "github.com/ndezwa/relego-support/agent/intel"
)

// ApplyTurn performs the whole mutation of a turn inside one store critical
// section: append the immutable interaction, bump the counters and the
// recent-inquiries ring, extend the indicator multiset, then rescore and
// reclassify against the updated history. Either all of it lands or none.
func ApplyTurn(in *GraphState, store *customerx.Store) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if _, _, err := store.GetOrCreate(in.Identity); err != nil {
		return nil, err
	}

	updated, err := store.Update(in.Identity, func(r *customerx.Record, history *[]customerx.Interaction) error {
		interaction := customerx.Interaction{
			ID:         uuid.NewString(),
			CustomerID: r.Identity,
			Producer:   in.Producer,
			Query:      in.Query,
			Response:   in.Response,
			Indicators: append([]string(nil), in.Signals.Indicators...),
			Timestamp:  in.Now,
		}
		*history = append(*history, interaction)

		r.TotalInteractions++
		ts := in.Now
		r.LastInteraction = &ts
		r.PushInquiry(in.Query)
		r.ExtendIndicators(in.Signals.Indicators)

		r.LeadScore = intelx.Score(r.Tier, *history)
		r.LeadStatus = intelx.NextStatus(r.LeadStatus, r.LeadScore)
		return nil
	})
	if err != nil {
		return nil, err
	}

	in.Record = updated
	return in, nil
}
