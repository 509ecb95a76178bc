package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCreditLimit(t *testing.T) {
	t.Parallel()

	limit, err := CreditLimit(500_000, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(limit-300_000) > 1e-9 {
		t.Fatalf("expected limit 300000, got %f", limit)
	}
}

func TestCreditLimitRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		turnover float64
		margin   float64
		want     error
	}{
		{name: "zero turnover", turnover: 0, margin: 10, want: ErrNonPositiveTurnover},
		{name: "negative turnover", turnover: -100, margin: 10, want: ErrNonPositiveTurnover},
		{name: "zero margin", turnover: 100_000, margin: 0, want: ErrMarginOutOfRange},
		{name: "margin above 100", turnover: 100_000, margin: 120, want: ErrMarginOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := CreditLimit(tt.turnover, tt.margin); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCompareTaxRegimesStandardRegion(t *testing.T) {
	t.Parallel()

	got, err := CompareTaxRegimes(1_000_000, RegionStandard)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if math.Abs(got.SoleProprietorTax-60_000) > 1e-9 {
		t.Fatalf("expected sole proprietor tax 60000, got %f", got.SoleProprietorTax)
	}
	// 49500 fixed plus 1% of the 700000 above the threshold.
	if math.Abs(got.SoleProprietorContributions-56_500) > 1e-9 {
		t.Fatalf("expected contributions 56500, got %f", got.SoleProprietorContributions)
	}
	if math.Abs(got.SoleProprietorTotal-116_500) > 1e-9 {
		t.Fatalf("expected sole proprietor total 116500, got %f", got.SoleProprietorTotal)
	}
	if math.Abs(got.SelfEmployedTotal-60_000) > 1e-9 {
		t.Fatalf("expected self-employed total 60000, got %f", got.SelfEmployedTotal)
	}
	if got.Better != VerdictSelfEmployed {
		t.Fatalf("expected self-employed verdict, got %s", got.Better)
	}
	if math.Abs(got.Difference-56_500) > 1e-9 {
		t.Fatalf("expected difference 56500, got %f", got.Difference)
	}
}

func TestCompareTaxRegimesPreferentialRate(t *testing.T) {
	t.Parallel()

	got, err := CompareTaxRegimes(200_000, RegionPreferential)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if math.Abs(got.SoleProprietorTax-8_000) > 1e-9 {
		t.Fatalf("expected sole proprietor tax 8000, got %f", got.SoleProprietorTax)
	}
	// Below the threshold only the fixed contribution applies.
	if math.Abs(got.SoleProprietorContributions-49_500) > 1e-9 {
		t.Fatalf("expected contributions 49500, got %f", got.SoleProprietorContributions)
	}
	if got.Better != VerdictSelfEmployed {
		t.Fatalf("expected self-employed verdict, got %s", got.Better)
	}
}

func TestCompareTaxRegimesUnknownRegionDefaultsToStandard(t *testing.T) {
	t.Parallel()

	standard, err := CompareTaxRegimes(500_000, RegionStandard)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	unknown, err := CompareTaxRegimes(500_000, Region("somewhere"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if standard != unknown {
		t.Fatalf("expected unknown region to match the standard band, got %+v vs %+v", unknown, standard)
	}
}

func TestCompareTaxRegimesRejectsNonPositiveIncome(t *testing.T) {
	t.Parallel()

	if _, err := CompareTaxRegimes(0, RegionStandard); !errors.Is(err, ErrNonPositiveIncome) {
		t.Fatalf("expected ErrNonPositiveIncome, got %v", err)
	}
	if _, err := CompareTaxRegimes(-50, RegionStandard); !errors.Is(err, ErrNonPositiveIncome) {
		t.Fatalf("expected ErrNonPositiveIncome, got %v", err)
	}
}
