package report

// Evaluation compares a month of spending against the monthly budget ceiling.
// Percentage is uncapped so callers can detect and report overage;
// CappedPercentage is clamped to 100 for progress-bar rendering. Remaining
// goes negative when over budget, with the derived OverBudget flag and
// OverageAmount exposed so callers never re-compute them ad hoc.
type Evaluation struct {
	Percentage       float64 `json:"percentage"`
	CappedPercentage float64 `json:"capped_percentage"`
	Remaining        float64 `json:"remaining"`
	OverBudget       bool    `json:"over_budget"`
	OverageAmount    float64 `json:"overage_amount"`
}

// Evaluate computes budget consumption for the given monthly spending and
// ceiling. A budget of zero (or less) yields a zero percentage rather than a
// division error.
func Evaluate(monthlySpending, monthlyBudget float64) Evaluation {
	var percentage float64
	if monthlyBudget > 0 {
		percentage = monthlySpending / monthlyBudget * 100
	}

	capped := percentage
	if capped > 100 {
		capped = 100
	}

	remaining := monthlyBudget - monthlySpending
	eval := Evaluation{
		Percentage:       percentage,
		CappedPercentage: capped,
		Remaining:        remaining,
		OverBudget:       remaining < 0,
	}
	if remaining < 0 {
		eval.OverageAmount = -remaining
	}
	return eval
}

// AverageDaily returns the mean daily spend for the month so far. Day-of-month
// values below 1 are treated as 1.
func AverageDaily(monthlySpending float64, dayOfMonth int) float64 {
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}
	return monthlySpending / float64(dayOfMonth)
}
