package customer

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Record is the persistent source-of-truth for one customer identity.
// It only grows: the indicator multiset, interaction counter, and history are
// monotone; the recent-inquiries ring is the single bounded field.
type Record struct {
	// Identity & profile
	Identity           string `json:"identity"`
	Email              string `json:"email,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
	Tier               Tier   `json:"tier"`
	Industry           string `json:"industry,omitempty"`
	CompanySize        string `json:"company_size,omitempty"`
	TechnicalLevel     string `json:"technical_level,omitempty"`     // beginner, intermediate, expert
	CommunicationStyle string `json:"communication_style,omitempty"` // casual, professional, technical

	// Lead qualification
	LeadScore        int        `json:"lead_score"` // 0..100
	LeadStatus       LeadStatus `json:"lead_status"`
	LeadIndicators   []string   `json:"lead_indicators,omitempty"`
	BudgetRange      string     `json:"budget_range,omitempty"`
	DecisionTimeline string     `json:"decision_timeline,omitempty"`

	// Interaction history rollup
	TotalInteractions int        `json:"total_interactions"`
	LastInteraction   *time.Time `json:"last_interaction,omitempty"`
	RecentInquiries   []string   `json:"recent_inquiries,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Tier string

const (
	TierIndividual Tier = "individual"
	TierBusiness   Tier = "business"
	TierEnterprise Tier = "enterprise"
)

func (t Tier) Valid() bool {
	switch t {
	case TierIndividual, TierBusiness, TierEnterprise:
		return true
	}
	return false
}

type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusConverted LeadStatus = "converted"
	StatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}

// Terminal statuses are set by an external actor and never overwritten by scoring.
func (s LeadStatus) Terminal() bool {
	return s == StatusConverted || s == StatusLost
}

const (
	// MaxRecentInquiries bounds the recent-inquiries ring.
	MaxRecentInquiries = 5
	// MaxInquirySnippet bounds each stored query snippet.
	MaxInquirySnippet = 100

	MinLeadScore = 0
	MaxLeadScore = 100
)

func NewRecord(identity string, now time.Time) *Record {
	return &Record{
		Identity:   identity,
		Tier:       TierIndividual,
		LeadStatus: StatusNew,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}
}

func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now.UTC()
}

// PushInquiry appends a truncated query snippet, evicting the oldest entry
// once the ring holds MaxRecentInquiries. Truncation counts runes so a
// multibyte character is never split.
func (r *Record) PushInquiry(query string) {
	snippet := query
	if utf8.RuneCountInString(snippet) > MaxInquirySnippet {
		runes := []rune(snippet)
		snippet = string(runes[:MaxInquirySnippet])
	}
	r.RecentInquiries = append(r.RecentInquiries, snippet)
	if n := len(r.RecentInquiries); n > MaxRecentInquiries {
		r.RecentInquiries = append(r.RecentInquiries[:0], r.RecentInquiries[n-MaxRecentInquiries:]...)
	}
}

func (r *Record) ExtendIndicators(indicators []string) {
	r.LeadIndicators = append(r.LeadIndicators, indicators...)
}

func (r *Record) Validate() error {
	if strings.TrimSpace(r.Identity) == "" {
		return fmt.Errorf("record identity is empty")
	}
	if !r.Tier.Valid() {
		return fmt.Errorf("invalid tier %q", r.Tier)
	}
	if !r.LeadStatus.Valid() {
		return fmt.Errorf("invalid lead status %q", r.LeadStatus)
	}
	if r.LeadScore < MinLeadScore || r.LeadScore > MaxLeadScore {
		return fmt.Errorf("lead score %d out of range", r.LeadScore)
	}
	if len(r.RecentInquiries) > MaxRecentInquiries {
		return fmt.Errorf("recent inquiries exceed capacity: %d", len(r.RecentInquiries))
	}
	return nil
}

// Clone returns a deep copy safe to hand to callers outside the store lock.
func (r *Record) Clone() *Record {
	cp := *r
	if r.LastInteraction != nil {
		ts := *r.LastInteraction
		cp.LastInteraction = &ts
	}
	cp.LeadIndicators = append([]string(nil), r.LeadIndicators...)
	cp.RecentInquiries = append([]string(nil), r.RecentInquiries...)
	return &cp
}
