package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Clés de métadonnées reconnues sur une commande WooCommerce
// Toute clé exploitée par la normalisation est déclarée ici
const (
	// Numéro de commande personnalisé (ancienne clé puis nouvelle clé)
	MetaKeyOrderNumberLegacy = "_wc_order_number"
	MetaKeyOrderNumber       = "_order_number"

	// Catégorie d'acheteur (absente = particulier)
	MetaKeyUserType = "user_type"

	// Identité fiscale des acheteurs professionnels
	MetaKeyCompanyName  = "company_name"
	MetaKeyEconomicCode = "economic_code"
	MetaKeyNationalID   = "national_id"
)

// Valeurs reconnues pour la clé user_type
const (
	UserTypeIndividual = "individual"
	UserTypeCorporate  = "corporate"
)

// RawOrder représente une commande telle que retournée par l'API wc/v3
// Structure immuable une fois décodée: la normalisation n'y écrit jamais
type RawOrder struct {
	ID                 int64          `json:"id"`
	Status             string         `json:"status"`
	DateCreated        string         `json:"date_created"`
	Billing            Billing        `json:"billing"`
	PaymentMethodTitle string         `json:"payment_method_title"`
	DiscountTotal      string         `json:"discount_total"`
	Total              string         `json:"total"`
	LineItems          []LineItem     `json:"line_items"`
	Refunds            []Refund       `json:"refunds"`
	MetaData           []MetaData     `json:"meta_data"`
	ShippingLines      []ShippingLine `json:"shipping_lines"`
}

// Billing regroupe les informations de facturation d'une commande
type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Phone     string `json:"phone"`
}

// LineItem représente une ligne d'article de la commande
type LineItem struct {
	Name        string `json:"name"`
	ProductID   int64  `json:"product_id"`
	VariationID int64  `json:"variation_id"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

// Refund représente un remboursement déclaré sur la commande
// Le total déclaré fait foi, il n'est pas recalculé depuis les lignes
type Refund struct {
	Total     string           `json:"total"`
	LineItems []RefundLineItem `json:"line_items"`
}

// RefundLineItem représente la part remboursée d'une ligne d'article
type RefundLineItem struct {
	ProductID   int64 `json:"product_id"`
	VariationID int64 `json:"variation_id"`
	Qty         int   `json:"qty"`
}

// MetaData représente une paire clé/valeur de métadonnée WooCommerce
// La valeur est faiblement typée côté API (string, nombre, structure...)
type MetaData struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// ShippingLine représente une ligne de livraison (la première est utilisée)
type ShippingLine struct {
	MethodTitle string `json:"method_title"`
	Total       string `json:"total"`
}

// Meta retourne la valeur de la première métadonnée portant cette clé
// Le booléen vaut false quand la clé est absente ou la valeur non scalaire
func (o RawOrder) Meta(key string) (string, bool) {
	for _, md := range o.MetaData {
		if md.Key != key {
			continue
		}
		switch v := md.Value.(type) {
		case string:
			return v, true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		default:
			return "", false
		}
	}
	return "", false
}

// MetaOrDefault retourne la valeur de la métadonnée, ou la valeur par défaut
func (o RawOrder) MetaOrDefault(key, fallback string) string {
	if v, ok := o.Meta(key); ok {
		return v
	}
	return fallback
}

// OrderNumber retourne le numéro de commande affiché
// Priorité à la clé historique, puis à la clé actuelle, puis à l'id interne
func (o RawOrder) OrderNumber() string {
	if v, ok := o.Meta(MetaKeyOrderNumberLegacy); ok {
		return v
	}
	if v, ok := o.Meta(MetaKeyOrderNumber); ok {
		return v
	}
	return strconv.FormatInt(o.ID, 10)
}

// parseAmount convertit un montant décimal WooCommerce (string) en float64
// Une chaîne vide vaut zéro; une chaîne invalide est une erreur de coercition
func parseAmount(field, value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s amount %q: %w", field, value, err)
	}
	return amount, nil
}
