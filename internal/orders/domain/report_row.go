package domain

// ReportItem représente un article survivant après déduction des remboursements
type ReportItem struct {
	Name       string
	Quantity   int
	PreTaxUnit float64
	VATUnit    float64
}

// ReportRow représente une commande normalisée, prête pour le rapport
// Exactement une ligne par commande normalisée avec succès
type ReportRow struct {
	OrderNumber    string
	OrderDate      string // date persane YYYY/MM/DD HH:MM:SS
	Buyer          Buyer
	Address        string
	City           string
	Postcode       string
	Phone          string
	PaymentMethod  string
	DiscountTotal  float64
	GrossTotal     float64
	PreTaxTotal    float64
	VATTotal       float64
	ShippingMethod string
	ShippingTotal  float64
	RefundTotal    float64
	NetTotal       float64 // total brut moins remboursements déclarés
	ItemNames      string  // champs multi-lignes parallèles, une ligne
	ItemQuantities string  // par article survivant, dans l'ordre des
	ItemUnitPrices string  // line_items d'origine
	ItemsCostSum   float64
	Items          []ReportItem
}
