package intel

import customerx "github.com/ndezwa/relego-support/agent/customer"

// Qualification thresholds, evaluated high to low.
const (
	QualifiedThreshold = 70
	ContactedThreshold = 40
)

// NextStatus maps a score onto a qualification status. It only upgrades:
// a record that reached qualified is never demoted by a lower score, and
// terminal statuses (converted, lost) pass through untouched.
func NextStatus(prior customerx.LeadStatus, score int) customerx.LeadStatus {
	switch prior {
	case customerx.StatusConverted, customerx.StatusLost:
		return prior
	case customerx.StatusQualified:
		return prior
	case customerx.StatusNew, customerx.StatusContacted:
		switch {
		case score >= QualifiedThreshold:
			return customerx.StatusQualified
		case score >= ContactedThreshold:
			return customerx.StatusContacted
		default:
			return prior
		}
	default:
		// Unknown prior statuses are left alone rather than invented over.
		return prior
	}
}
