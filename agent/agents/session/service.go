package session

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	customerx "github.com/ndezwa/relego-support/agent/customer"
	nodex "github.com/ndezwa/relego-support/agent/nodes/session"
	transcriptx "github.com/ndezwa/relego-support/agent/transcript"
)

var ErrInvalidIdentity = nodex.ErrInvalidIdentity

// TurnResult re-exports the graph output so callers don't import the node package.
type TurnResult = nodex.TurnResult

// Manager is the session facade: it owns identity resolution, the resumable
// transcript handle, and the per-turn intelligence pipeline over the customer
// store.
type Manager struct {
	store       *customerx.Store
	transcripts *transcriptx.Store

	graphRunner compose.Runnable[nodex.GraphInput, nodex.TurnResult]

	now func() time.Time
}

func New(store *customerx.Store, transcripts *transcriptx.Store) (*Manager, error) {
	if store == nil {
		return nil, errors.New("customer store is required")
	}
	if transcripts == nil {
		return nil, errors.New("transcript store is required")
	}

	m := &Manager{
		store:       store,
		transcripts: transcripts,
		now:         time.Now,
	}

	graphRunner, err := m.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	m.graphRunner = graphRunner

	return m, nil
}

// GetOrCreateSession resolves (or lazily creates) the customer record and the
// transcript handle for identity. A blank identity mints a fresh one.
// Repeated calls with the same identity return the same durable record.
func (m *Manager) GetOrCreateSession(ctx context.Context, identity string) (string, *transcriptx.Session, *customerx.Record, error) {
	if identity == "" {
		identity = uuid.NewString()
	}

	record, created, err := m.store.GetOrCreate(identity)
	if err != nil {
		return "", nil, nil, err
	}

	handle, err := m.transcripts.Session(identity)
	if err != nil {
		return "", nil, nil, err
	}

	if created {
		log.Debug().Str("customer_id", identity).Msg("customer record created")
	}
	return identity, handle, record, nil
}

// RecordInteraction processes one turn: extract signals, append the
// interaction, update the record, rescore, reclassify, and decide escalation.
func (m *Manager) RecordInteraction(ctx context.Context, identity, query, response, producer string) (TurnResult, error) {
	out, err := m.graphRunner.Invoke(ctx, nodex.GraphInput{
		Identity: identity,
		Query:    query,
		Response: response,
		Producer: producer,
	})
	if err != nil {
		return TurnResult{}, err
	}

	log.Info().
		Str("customer_id", identity).
		Str("producer", producer).
		Int("lead_score", out.Score).
		Str("lead_status", string(out.Status)).
		Strs("indicators", out.Signals.Indicators).
		Bool("escalate", out.Escalate).
		Msg("interaction recorded")

	return out, nil
}
