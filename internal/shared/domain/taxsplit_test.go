package domain

import (
	"math"
	"testing"
)

func TestSplitInclusive(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
	}{
		{"montant entier", 110000},
		{"montant non divisible", 99999},
		{"petit montant", 1},
		{"montant decimal", 123456.78},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := SplitInclusive(tt.amount)

			// Reconstituer le TTC depuis le hors-taxe doit retomber sur
			// le montant d'origine, à l'arrondi flottant près
			if got := split.PreTax() * vatInclusiveFactor; math.Abs(got-tt.amount) > 1e-6 {
				t.Errorf("PreTax()*1.10 = %v, want %v", got, tt.amount)
			}

			// Hors-taxe + TVA = TTC, exactement par construction
			if got := split.PreTax() + split.VAT(); got != tt.amount {
				t.Errorf("PreTax()+VAT() = %v, want exactly %v", got, tt.amount)
			}
			if split.Total() != tt.amount {
				t.Errorf("Total() = %v, want %v", split.Total(), tt.amount)
			}
		})
	}
}

func TestSplitInclusive_NonPositive(t *testing.T) {
	for _, amount := range []float64{0, -1, -110000} {
		split := SplitInclusive(amount)
		if !split.IsZero() {
			t.Errorf("SplitInclusive(%v) = %+v, want zero split", amount, split)
		}
	}
}
