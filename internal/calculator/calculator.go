// Package calculator implements the portal's illustrative credit and tax
// arithmetic. The formulas mirror the prototype's estimates and carry no
// real-world guarantee.
package calculator

import "errors"

// ErrNonPositiveTurnover indicates the average turnover is missing or not positive.
var ErrNonPositiveTurnover = errors.New("calculator: turnover must be positive")

// ErrMarginOutOfRange indicates the margin percentage falls outside (0, 100].
var ErrMarginOutOfRange = errors.New("calculator: margin must be within (0, 100]")

// ErrNonPositiveIncome indicates the annual income is missing or not positive.
var ErrNonPositiveIncome = errors.New("calculator: income must be positive")

// creditLimitMultiplier scales monthly profit into an estimated credit limit.
const creditLimitMultiplier = 3

// CreditLimit estimates a credit limit from the average monthly turnover and
// the margin percentage: limit = 3 * turnover * margin.
func CreditLimit(avgTurnover, marginPercent float64) (float64, error) {
	if avgTurnover <= 0 {
		return 0, ErrNonPositiveTurnover
	}
	if marginPercent <= 0 || marginPercent > 100 {
		return 0, ErrMarginOutOfRange
	}

	limit := creditLimitMultiplier * avgTurnover * (marginPercent / 100)
	if limit < 0 {
		limit = 0
	}
	return limit, nil
}

// Region selects the tax rate band.
type Region string

const (
	// RegionStandard applies the regular 6% simplified rate.
	RegionStandard Region = "standard"
	// RegionPreferential applies the reduced 4% rate of preferential regions.
	RegionPreferential Region = "preferential"
)

// Verdict names the cheaper regime in a comparison.
type Verdict string

const (
	// VerdictSoleProprietor indicates the simplified sole proprietor regime wins.
	VerdictSoleProprietor Verdict = "sole_proprietor"
	// VerdictSelfEmployed indicates the self-employment regime wins.
	VerdictSelfEmployed Verdict = "self_employed"
	// VerdictEqual indicates both regimes cost the same.
	VerdictEqual Verdict = "equal"
)

// Sole proprietor contribution rules: a fixed annual contribution plus 1% of
// income above the threshold.
const (
	fixedContributions         = 49_500.0
	extraContributionRate      = 0.01
	extraContributionThreshold = 300_000.0
)

// RegimeComparison breaks down the cost of both regimes for a given income.
type RegimeComparison struct {
	SoleProprietorTax           float64
	SoleProprietorContributions float64
	SoleProprietorTotal         float64
	SelfEmployedTotal           float64
	Better                      Verdict
	Difference                  float64
}

// CompareTaxRegimes contrasts the simplified sole proprietor regime with
// self-employment for the given annual income. Any region other than the
// preferential one is treated as standard.
func CompareTaxRegimes(annualIncome float64, region Region) (RegimeComparison, error) {
	if annualIncome <= 0 {
		return RegimeComparison{}, ErrNonPositiveIncome
	}

	rate := 0.06
	if region == RegionPreferential {
		rate = 0.04
	}

	contributions := fixedContributions
	if annualIncome > extraContributionThreshold {
		contributions += (annualIncome - extraContributionThreshold) * extraContributionRate
	}

	comparison := RegimeComparison{
		SoleProprietorTax:           annualIncome * rate,
		SoleProprietorContributions: contributions,
		SelfEmployedTotal:           annualIncome * rate,
	}
	comparison.SoleProprietorTotal = comparison.SoleProprietorTax + comparison.SoleProprietorContributions

	switch {
	case comparison.SoleProprietorTotal < comparison.SelfEmployedTotal:
		comparison.Better = VerdictSoleProprietor
		comparison.Difference = comparison.SelfEmployedTotal - comparison.SoleProprietorTotal
	case comparison.SelfEmployedTotal < comparison.SoleProprietorTotal:
		comparison.Better = VerdictSelfEmployed
		comparison.Difference = comparison.SoleProprietorTotal - comparison.SelfEmployedTotal
	default:
		comparison.Better = VerdictEqual
	}

	return comparison, nil
}
