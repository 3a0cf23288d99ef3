package customer

import "time"

// Interaction is one processed turn. Immutable once appended.
type Interaction struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Producer   string    `json:"producer"` // specialist that generated the response
	Query      string    `json:"query"`
	Response   string    `json:"response"`
	Indicators []string  `json:"indicators,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func (i Interaction) clone() Interaction {
	cp := i
	cp.Indicators = append([]string(nil), i.Indicators...)
	return cp
}
