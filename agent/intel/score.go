package intel

import customerx "github.com/ndezwa/relego-support/agent/customer"

const (
	enterpriseBonus    = 30
	businessBonus      = 15
	indicatorPoints    = 5
	frequencyBonus     = 10
	frequencyThreshold = 1 // more than one interaction earns the bonus
)

// Score recomputes the lead score from zero: tier bonus plus indicator
// contributions over the full history plus a flat frequency bonus, clamped to
// [0,100]. The record's stored score is never an input, so scoring the same
// history twice yields the same value.
func Score(tier customerx.Tier, history []customerx.Interaction) int {
	score := 0

	switch tier {
	case customerx.TierEnterprise:
		score += enterpriseBonus
	case customerx.TierBusiness:
		score += businessBonus
	case customerx.TierIndividual:
		// no tier bonus
	}

	for _, interaction := range history {
		score += indicatorPoints * len(interaction.Indicators)
	}

	if len(history) > frequencyThreshold {
		score += frequencyBonus
	}

	if score > customerx.MaxLeadScore {
		return customerx.MaxLeadScore
	}
	if score < customerx.MinLeadScore {
		return customerx.MinLeadScore
	}
	return score
}
