// Package analytics rolls up the customer store into best-effort business
// intelligence. Everything here reads a point-in-time snapshot and mutates
// nothing.
package analytics

import (
	"math"

	customerx "github.com/ndezwa/relego-support/agent/customer"
	intelx "github.com/ndezwa/relego-support/agent/intel"
)

type Report struct {
	TotalCustomers int             `json:"total_customers"`
	QualifiedLeads int             `json:"qualified_leads"`
	AverageScore   float64         `json:"average_score"`
	ConversionRate float64         `json:"conversion_rate"` // percent
	HighValue      []HighValueLead `json:"high_value,omitempty"`
}

// HighValueLead surfaces customers worth immediate follow-up.
type HighValueLead struct {
	Identity string               `json:"identity"`
	Score    int                  `json:"score"`
	Status   customerx.LeadStatus `json:"status"`
}

type Aggregator struct {
	store *customerx.Store
}

func New(store *customerx.Store) *Aggregator {
	return &Aggregator{store: store}
}

// Report computes the rollup over a consistent snapshot. Zero customers yields
// zeros, never a division by zero.
func (a *Aggregator) Report() Report {
	records := a.store.Snapshot()

	report := Report{TotalCustomers: len(records)}
	if len(records) == 0 {
		return report
	}

	scoreSum := 0
	for _, r := range records {
		scoreSum += r.LeadScore
		if r.LeadStatus == customerx.StatusQualified {
			report.QualifiedLeads++
		}
		if r.LeadScore >= intelx.QualifiedThreshold {
			report.HighValue = append(report.HighValue, HighValueLead{
				Identity: r.Identity,
				Score:    r.LeadScore,
				Status:   r.LeadStatus,
			})
		}
	}

	report.AverageScore = round1(float64(scoreSum) / float64(len(records)))
	report.ConversionRate = round1(float64(report.QualifiedLeads) / float64(len(records)) * 100)
	return report
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
