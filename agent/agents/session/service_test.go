package session

import (
	"context"
	"errors"
	"testing"

	customerx "github.com/ndezwa/relego-support/agent/customer"
	transcriptx "github.com/ndezwa/relego-support/agent/transcript"
)

func newTestManager(t *testing.T) (*Manager, *customerx.Store) {
	t.Helper()

	store := customerx.NewStore()
	transcripts, err := transcriptx.Open(":memory:")
	if err != nil {
		t.Fatalf("transcript.Open() error = %v", err)
	}
	t.Cleanup(func() { transcripts.Close() })

	manager, err := New(store, transcripts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return manager, store
}

func TestNewRequiresCollaborators(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error for nil collaborators")
	}
}

func TestGetOrCreateSessionMintsIdentity(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)
	ctx := context.Background()

	identity, handle, record, err := manager.GetOrCreateSession(ctx, "")
	if err != nil {
		t.Fatalf("GetOrCreateSession() error = %v", err)
	}
	if identity == "" || handle == nil || record == nil {
		t.Fatalf("incomplete session: identity=%q handle=%v record=%v", identity, handle, record)
	}

	again, _, _, err := manager.GetOrCreateSession(ctx, identity)
	if err != nil {
		t.Fatalf("GetOrCreateSession() resume error = %v", err)
	}
	if again != identity {
		t.Fatalf("resumed identity changed: %s vs %s", again, identity)
	}
}

func TestRecordInteractionEnterpriseLead(t *testing.T) {
	t.Parallel()

	manager, store := newTestManager(t)
	ctx := context.Background()

	if _, _, _, err := manager.GetOrCreateSession(ctx, "cust-1"); err != nil {
		t.Fatalf("GetOrCreateSession() error = %v", err)
	}
	tier := customerx.TierEnterprise
	if _, err := store.ApplyPatch("cust-1", customerx.ProfilePatch{Tier: &tier}); err != nil {
		t.Fatalf("ApplyPatch() error = %v", err)
	}

	// Tier bonus 30 plus two indicators lands exactly on the contacted line.
	result, err := manager.RecordInteraction(ctx, "cust-1",
		"we have a budget set aside, when can you start?",
		"Happy to help with scheduling.",
		"triage")
	if err != nil {
		t.Fatalf("RecordInteraction() error = %v", err)
	}
	if result.Score != 40 {
		t.Fatalf("turn 1 score = %d, want 40", result.Score)
	}
	if result.Status != customerx.StatusContacted {
		t.Fatalf("turn 1 status = %s, want contacted", result.Status)
	}
	if result.Escalate {
		t.Fatal("turn 1 must not escalate")
	}

	// Four quiet turns add only the frequency bonus, then trip the
	// interaction-count escalation on the fifth turn.
	for i := 0; i < 4; i++ {
		result, err = manager.RecordInteraction(ctx, "cust-1", "thanks", "You're welcome.", "triage")
		if err != nil {
			t.Fatalf("quiet turn %d error = %v", i, err)
		}
	}
	if result.Score != 50 {
		t.Fatalf("turn 5 score = %d, want 50", result.Score)
	}
	if !result.Escalate {
		t.Fatal("expected escalation after five interactions")
	}

	record, err := store.Get("cust-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if record.TotalInteractions != 5 {
		t.Fatalf("total interactions = %d, want 5", record.TotalInteractions)
	}
	history, err := store.History("cust-1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
}

func TestRecordInteractionScoreEscalation(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)
	ctx := context.Background()

	// Three indicators per turn on an individual tier: 15, 40, 55, 70.
	const query = "our company has a budget and the timeline is urgent"
	var (
		result TurnResult
		err    error
	)
	for i := 0; i < 4; i++ {
		result, err = manager.RecordInteraction(ctx, "cust-2", query, "Understood.", "triage")
		if err != nil {
			t.Fatalf("turn %d error = %v", i, err)
		}
	}

	if result.Score != 70 {
		t.Fatalf("turn 4 score = %d, want 70", result.Score)
	}
	if result.Status != customerx.StatusQualified {
		t.Fatalf("turn 4 status = %s, want qualified", result.Status)
	}
	// Score threshold alone is sufficient, before the interaction count is.
	if !result.Escalate {
		t.Fatal("expected score-driven escalation at four interactions")
	}
}

func TestRecordInteractionEmptyIdentity(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)
	_, err := manager.RecordInteraction(context.Background(), "", "hello", "hi", "triage")
	if !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}
}
