package domain

import "strings"

// BuyerKind représente la catégorie d'acheteur (variant fermé)
type BuyerKind int

const (
	BuyerIndividual BuyerKind = iota
	BuyerCorporate
)

// Buyer représente l'identité de l'acheteur d'une commande
// Les champs portés dépendent de la catégorie: nom/prénom pour un
// particulier, raison sociale et identifiants fiscaux pour une société
type Buyer struct {
	kind         BuyerKind
	firstName    string
	lastName     string
	companyName  string
	economicCode string
	nationalID   string
}

// NewIndividualBuyer crée un acheteur particulier
func NewIndividualBuyer(firstName, lastName string) Buyer {
	return Buyer{
		kind:      BuyerIndividual,
		firstName: firstName,
		lastName:  lastName,
	}
}

// NewCorporateBuyer crée un acheteur professionnel
func NewCorporateBuyer(companyName, economicCode, nationalID string) Buyer {
	return Buyer{
		kind:         BuyerCorporate,
		companyName:  companyName,
		economicCode: economicCode,
		nationalID:   nationalID,
	}
}

// BuyerFromOrder détermine l'acheteur depuis les métadonnées de la commande
// Catégorie par défaut: particulier. La raison sociale vient de la
// métadonnée dédiée, sinon du champ company de la facturation
func BuyerFromOrder(o RawOrder) Buyer {
	if o.MetaOrDefault(MetaKeyUserType, UserTypeIndividual) == UserTypeCorporate {
		company := o.MetaOrDefault(MetaKeyCompanyName, o.Billing.Company)
		return NewCorporateBuyer(
			company,
			o.MetaOrDefault(MetaKeyEconomicCode, ""),
			o.MetaOrDefault(MetaKeyNationalID, ""),
		)
	}
	return NewIndividualBuyer(o.Billing.FirstName, o.Billing.LastName)
}

// Kind retourne la catégorie d'acheteur
func (b Buyer) Kind() BuyerKind {
	return b.kind
}

// IsCorporate vérifie si l'acheteur est une société
func (b Buyer) IsCorporate() bool {
	return b.kind == BuyerCorporate
}

// FirstName retourne le prénom (vide pour une société)
func (b Buyer) FirstName() string {
	return b.firstName
}

// LastName retourne le nom de famille (vide pour une société)
func (b Buyer) LastName() string {
	return b.lastName
}

// CompanyName retourne la raison sociale (vide pour un particulier)
func (b Buyer) CompanyName() string {
	return b.companyName
}

// EconomicCode retourne le code économique (sociétés uniquement)
func (b Buyer) EconomicCode() string {
	return b.economicCode
}

// NationalID retourne l'identifiant national (sociétés uniquement)
func (b Buyer) NationalID() string {
	return b.nationalID
}

// DisplayName retourne le nom affiché dans les rapports
func (b Buyer) DisplayName() string {
	if b.kind == BuyerCorporate {
		return b.companyName
	}
	return strings.TrimSpace(b.firstName + " " + b.lastName)
}
