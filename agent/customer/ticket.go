package customer

import "time"

type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

// Ticket records a handoff to a human specialist.
type Ticket struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customer_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	ServiceArea string         `json:"service_area"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
