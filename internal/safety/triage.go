package safety

import (
	"sort"

	"foodbridge/internal/models"
)

// EvaluatedDonation pairs a donation with its verdict
type EvaluatedDonation struct {
	Donation models.DonationAttributes `json:"donation"`
	Verdict  models.SafetyVerdict      `json:"verdict"`
}

// Triage evaluates every donation. In emergency mode the result is ordered
// Unsafe, Urgent, Safe; donations with the same status keep their input
// order. Outside emergency mode input order is preserved.
func (e *Engine) Triage(donations []models.DonationAttributes, emergency bool) []EvaluatedDonation {
	out := make([]EvaluatedDonation, len(donations))
	for i, d := range donations {
		out[i] = EvaluatedDonation{Donation: d, Verdict: e.Evaluate(d)}
	}

	if emergency {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Verdict.Status.Severity() < out[j].Verdict.Status.Severity()
		})
	}

	return out
}
