package domain

// Taux de TVA fixe (10%) inclus dans les montants bruts WooCommerce
const vatInclusiveFactor = 1.10

// TaxSplit représente la décomposition d'un montant TTC en hors-taxe et TVA
type TaxSplit struct {
	preTax float64
	vat    float64
}

// SplitInclusive décompose un montant TTC
// Un montant nul ou négatif donne une décomposition nulle
func SplitInclusive(amount float64) TaxSplit {
	if amount <= 0 {
		return TaxSplit{}
	}
	preTax := amount / vatInclusiveFactor
	return TaxSplit{
		preTax: preTax,
		vat:    amount - preTax,
	}
}

// PreTax retourne la part hors-taxe
func (ts TaxSplit) PreTax() float64 {
	return ts.preTax
}

// VAT retourne la part TVA
func (ts TaxSplit) VAT() float64 {
	return ts.vat
}

// Total retourne le montant TTC (hors-taxe + TVA, exact par construction)
func (ts TaxSplit) Total() float64 {
	return ts.preTax + ts.vat
}

// IsZero vérifie si la décomposition est nulle
func (ts TaxSplit) IsZero() bool {
	return ts.preTax == 0 && ts.vat == 0
}
