package customer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	contractx "github.com/ndezwa/relego-support/agent/contract"
)

// Store owns the canonical mutable customer records and their interaction
// history for the lifetime of the process. It is constructed explicitly and
// passed to the session manager and aggregator; there is no package-level
// instance.
//
// Locking: a global RWMutex guards the identity map, and each entry carries
// its own mutex so turns for different identities proceed independently while
// a turn for one identity is a single critical section.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry

	now func() time.Time
}

type entry struct {
	mu      sync.Mutex
	record  *Record
	history []Interaction
	tickets []Ticket
}

type StoreOption func(*Store)

// WithClock overrides the store clock. Used by tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		entries: make(map[string]*entry, 64),
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// GetOrCreate resolves the record for identity, lazily creating it on first
// contact. Returns a snapshot; the canonical record stays inside the store.
func (s *Store) GetOrCreate(identity string) (*Record, bool, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, false, fmt.Errorf("%w: identity is empty", contractx.ErrMalformedInput)
	}

	s.mu.RLock()
	e, ok := s.entries[identity]
	s.mu.RUnlock()
	if ok {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.record.Clone(), false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[identity]; ok {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.record.Clone(), false, nil
	}
	e = &entry{record: NewRecord(identity, s.now())}
	s.entries[identity] = e
	return e.record.Clone(), true, nil
}

// Get returns a snapshot of an existing record.
func (s *Store) Get(identity string) (*Record, error) {
	e, err := s.entry(identity)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record.Clone(), nil
}

// Update runs fn as the single critical section for identity. fn receives a
// working copy of the record and history; the copies replace the canonical
// state only when fn succeeds and the post-conditions hold, so a failed turn
// never leaves indicators extended without the matching interaction.
func (s *Store) Update(identity string, fn func(r *Record, history *[]Interaction) error) (*Record, error) {
	e, err := s.entry(identity)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	work := e.record.Clone()
	history := make([]Interaction, len(e.history))
	for i := range e.history {
		history[i] = e.history[i].clone()
	}

	if err := fn(work, &history); err != nil {
		return nil, err
	}
	if len(history) < len(e.history) {
		return nil, fmt.Errorf("%w: interaction history shrank", contractx.ErrInvariant)
	}
	if work.LeadScore < MinLeadScore || work.LeadScore > MaxLeadScore {
		return nil, fmt.Errorf("%w: lead score %d outside [0,100]", contractx.ErrInvariant, work.LeadScore)
	}
	if e.record.LeadStatus.Terminal() && work.LeadStatus != e.record.LeadStatus {
		return nil, fmt.Errorf("%w: cannot leave terminal status %s", contractx.ErrInvariant, e.record.LeadStatus)
	}
	if err := work.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrInvariant, err)
	}

	work.Touch(s.now())
	e.record = work
	e.history = history
	return work.Clone(), nil
}

// ApplyPatch applies an explicit profile update to an existing record.
func (s *Store) ApplyPatch(identity string, patch ProfilePatch) (*Record, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	return s.Update(identity, func(r *Record, _ *[]Interaction) error {
		patch.apply(r)
		return nil
	})
}

// SetOutcome marks a lead converted or lost. This is the only path into a
// terminal status; once terminal, the status is frozen.
func (s *Store) SetOutcome(identity string, outcome LeadStatus) (*Record, error) {
	if !outcome.Terminal() {
		return nil, fmt.Errorf("%w: outcome %q is not terminal", contractx.ErrInvariant, outcome)
	}
	e, err := s.entry(identity)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record.LeadStatus.Terminal() && e.record.LeadStatus != outcome {
		return nil, fmt.Errorf("%w: lead already %s", contractx.ErrInvariant, e.record.LeadStatus)
	}
	e.record.LeadStatus = outcome
	e.record.Touch(s.now())
	return e.record.Clone(), nil
}

// History returns a copy of the interaction sequence in append order.
func (s *Store) History(identity string) ([]Interaction, error) {
	e, err := s.entry(identity)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Interaction, len(e.history))
	for i := range e.history {
		out[i] = e.history[i].clone()
	}
	return out, nil
}

// CreateTicket opens a support ticket for an existing customer.
func (s *Store) CreateTicket(identity, title, description string, priority TicketPriority, serviceArea string) (Ticket, error) {
	if !priority.Valid() {
		priority = PriorityMedium
	}
	e, err := s.entry(identity)
	if err != nil {
		return Ticket{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	now := s.now().UTC()
	t := Ticket{
		ID:          uuid.NewString(),
		CustomerID:  e.record.Identity,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      TicketOpen,
		ServiceArea: serviceArea,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.tickets = append(e.tickets, t)
	return t, nil
}

func (s *Store) TicketsFor(identity string) ([]Ticket, error) {
	e, err := s.entry(identity)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Ticket(nil), e.tickets...), nil
}

// Snapshot returns point-in-time copies of every record, ordered by identity,
// for read-only rollups.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.entries))
	for _, e := range s.entries {
		e.mu.Lock()
		out = append(out, *e.record.Clone())
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}

func (s *Store) entry(identity string) (*entry, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, fmt.Errorf("%w: identity is empty", contractx.ErrMalformedInput)
	}
	s.mu.RLock()
	e, ok := s.entries[identity]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: identity=%s", contractx.ErrNotFound, identity)
	}
	return e, nil
}
