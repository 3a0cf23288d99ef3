package intel

import (
	"testing"

	customerx "github.com/ndezwa/relego-support/agent/customer"
)

func TestNextStatusThresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prior customerx.LeadStatus
		score int
		want  customerx.LeadStatus
	}{
		{customerx.StatusNew, 0, customerx.StatusNew},
		{customerx.StatusNew, 39, customerx.StatusNew},
		{customerx.StatusNew, 40, customerx.StatusContacted},
		{customerx.StatusNew, 69, customerx.StatusContacted},
		{customerx.StatusNew, 70, customerx.StatusQualified},
		{customerx.StatusNew, 100, customerx.StatusQualified},
		{customerx.StatusContacted, 70, customerx.StatusQualified},
	}
	for _, tc := range cases {
		if got := NextStatus(tc.prior, tc.score); got != tc.want {
			t.Fatalf("NextStatus(%s, %d) = %s, want %s", tc.prior, tc.score, got, tc.want)
		}
	}
}

func TestNextStatusNeverDemotes(t *testing.T) {
	t.Parallel()

	if got := NextStatus(customerx.StatusQualified, 0); got != customerx.StatusQualified {
		t.Fatalf("qualified demoted to %s", got)
	}
	if got := NextStatus(customerx.StatusContacted, 10); got != customerx.StatusContacted {
		t.Fatalf("contacted demoted to %s", got)
	}
}

func TestNextStatusTerminalPassThrough(t *testing.T) {
	t.Parallel()

	for _, prior := range []customerx.LeadStatus{customerx.StatusConverted, customerx.StatusLost} {
		if got := NextStatus(prior, 100); got != prior {
			t.Fatalf("terminal status %s changed to %s", prior, got)
		}
	}
}
