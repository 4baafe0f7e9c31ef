package eligibility

// PropertyType is the canonical property category used by the product rules.
type PropertyType string

const (
	PropertySingleFamily PropertyType = "Single Family"
	PropertyCondo        PropertyType = "Condo"
	PropertyTownhouse    PropertyType = "Townhouse"
	PropertyMultiFamily  PropertyType = "Multi-Family"
	PropertyManufactured PropertyType = "Manufactured"
	PropertyApartment    PropertyType = "Apartment"
	PropertyLand         PropertyType = "Land"
)

// OwnershipType is the canonical ownership structure inferred from owner names.
type OwnershipType string

const (
	OwnershipPersonal    OwnershipType = "Personal"
	OwnershipLLC         OwnershipType = "LLC"
	OwnershipCorporation OwnershipType = "Corporation"
	OwnershipTrust       OwnershipType = "Trust"
	OwnershipPartnership OwnershipType = "Partnership"
)

// Product identifies one of the two financial products offered through the portal.
type Product string

const (
	ProductSaleLeaseback Product = "sale_leaseback"
	ProductHomeEquity    Product = "home_equity_investment"
)

// PropertyAttributes is the normalized input for an evaluation. Monetary
// amounts are whole dollars. State is uppercased before rule checks, so
// callers may pass it in any case.
type PropertyAttributes struct {
	HomeValue       float64       `json:"homeValue" bson:"homeValue"`
	MortgageBalance float64       `json:"mortgageBalance" bson:"mortgageBalance"`
	State           string        `json:"state" bson:"state"`
	PropertyType    PropertyType  `json:"propertyType" bson:"propertyType"`
	OwnershipType   OwnershipType `json:"ownershipType" bson:"ownershipType"`
}

// Verdict is the outcome of a single product evaluation. OfferAmount is zero
// whenever IsEligible is false, and DisqualificationReasons is empty whenever
// IsEligible is true. LTV holds the loan-to-value percentage the decision
// used (combined LTV for the home-equity product).
type Verdict struct {
	Product                 Product  `json:"product" bson:"product"`
	IsEligible              bool     `json:"isEligible" bson:"isEligible"`
	OfferAmount             float64  `json:"offerAmount" bson:"offerAmount"`
	LTV                     float64  `json:"ltv" bson:"ltv"`
	DisqualificationReasons []string `json:"disqualificationReasons,omitempty" bson:"disqualificationReasons,omitempty"`
}

// Decision combines both product verdicts into a single proceed/no-proceed
// answer. CombinedReasons is populated only when neither product qualifies,
// and its wording never names a specific product.
type Decision struct {
	SaleLeaseback   Verdict  `json:"saleLeaseback" bson:"saleLeaseback"`
	HomeEquity      Verdict  `json:"homeEquityInvestment" bson:"homeEquityInvestment"`
	EitherEligible  bool     `json:"eitherEligible" bson:"eitherEligible"`
	BestOfferAmount float64  `json:"bestOfferAmount" bson:"bestOfferAmount"`
	CombinedReasons []string `json:"combinedReasons,omitempty" bson:"combinedReasons,omitempty"`
}
