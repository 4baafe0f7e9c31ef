package models

// QuoteRequest asks for a product decision on an address. The address can
// arrive as one free-text line or as parts; homeValue and mortgageBalance
// are optional slider-style overrides of the provider estimates.
type QuoteRequest struct {
	Address       string `json:"address,omitempty" example:"12 Juniper Ct, Austin, TX 78701"`
	StreetAddress string `json:"streetAddress,omitempty" example:"12 Juniper Ct"`
	City          string `json:"city,omitempty" example:"Austin"`
	State         string `json:"state,omitempty" example:"TX"`
	ZipCode       string `json:"zipCode,omitempty" example:"78701"`

	HomeValue       *float64 `json:"homeValue,omitempty" example:"450000"`
	MortgageBalance *float64 `json:"mortgageBalance,omitempty" example:"120000"`
}

// SubmitLeadRequest carries the homeowner contact details required to push
// a qualified lead to the funding network.
type SubmitLeadRequest struct {
	FirstName string `json:"firstName" example:"Dana"`
	LastName  string `json:"lastName" example:"Whitfield"`
	Email     string `json:"email" example:"dana@example.com"`
	Phone     string `json:"phone" example:"555-0142"`
}

// PayoffRequest holds inputs for the payoff projection calculator.
type PayoffRequest struct {
	HomeValue        float64 `json:"homeValue" example:"500000"`
	MortgageBalance  float64 `json:"mortgageBalance" example:"200000"`
	Investment       float64 `json:"investment" example:"100000"`
	AppreciationRate float64 `json:"appreciationRate" example:"0.04"`
	TermYears        int     `json:"termYears" example:"10"`
}
