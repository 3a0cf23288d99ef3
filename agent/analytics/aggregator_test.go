package analytics

import (
	"testing"

	customerx "github.com/ndezwa/relego-support/agent/customer"
)

func TestReportEmptyStore(t *testing.T) {
	t.Parallel()

	report := New(customerx.NewStore()).Report()
	if report.TotalCustomers != 0 || report.QualifiedLeads != 0 {
		t.Fatalf("unexpected counts: %+v", report)
	}
	if report.AverageScore != 0 || report.ConversionRate != 0 {
		t.Fatalf("empty store must report zeros, got %+v", report)
	}
	if len(report.HighValue) != 0 {
		t.Fatalf("unexpected high value leads: %#v", report.HighValue)
	}
}

func TestReportRollup(t *testing.T) {
	t.Parallel()

	store := customerx.NewStore()
	seed := []struct {
		identity string
		score    int
		status   customerx.LeadStatus
	}{
		{"cust-a", 80, customerx.StatusQualified},
		{"cust-b", 45, customerx.StatusContacted},
		{"cust-c", 0, customerx.StatusNew},
	}
	for _, s := range seed {
		if _, _, err := store.GetOrCreate(s.identity); err != nil {
			t.Fatalf("GetOrCreate(%s) error = %v", s.identity, err)
		}
		score, status := s.score, s.status
		if _, err := store.Update(s.identity, func(r *customerx.Record, _ *[]customerx.Interaction) error {
			r.LeadScore = score
			r.LeadStatus = status
			return nil
		}); err != nil {
			t.Fatalf("seed %s error = %v", s.identity, err)
		}
	}

	report := New(store).Report()
	if report.TotalCustomers != 3 {
		t.Fatalf("total = %d, want 3", report.TotalCustomers)
	}
	if report.QualifiedLeads != 1 {
		t.Fatalf("qualified = %d, want 1", report.QualifiedLeads)
	}
	// (80+45+0)/3 = 41.666..., rounded to one decimal.
	if report.AverageScore != 41.7 {
		t.Fatalf("average = %v, want 41.7", report.AverageScore)
	}
	// 1/3 of the book is qualified.
	if report.ConversionRate != 33.3 {
		t.Fatalf("conversion = %v, want 33.3", report.ConversionRate)
	}
	if len(report.HighValue) != 1 || report.HighValue[0].Identity != "cust-a" {
		t.Fatalf("unexpected high value leads: %#v", report.HighValue)
	}
}
