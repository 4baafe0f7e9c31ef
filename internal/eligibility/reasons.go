package eligibility

// Per-product disqualification reasons. These may name the product because
// they are shown next to that product's offer card.
const (
	ReasonSLStateNotEligible = "Property state is not eligible for the sale-leaseback program"
	ReasonSLNotSingleFamily  = "Sale-leaseback offers are limited to single family homes"
	ReasonSLValueBelowMin    = "Home value is below the sale-leaseback minimum of $200,000"
	ReasonSLValueAboveMax    = "Home value exceeds the sale-leaseback maximum of $1,500,000"
	ReasonSLLTVTooHigh       = "Mortgage balance exceeds 65% of the home value"

	ReasonHEIStateNotEligible = "Property state is not eligible for a home equity investment"
	ReasonHEIPropertyType     = "Property type does not qualify for a home equity investment"
	ReasonHEIOwnership        = "Homes held by an LLC, corporation, or partnership do not qualify for a home equity investment"
	ReasonHEIValueBelowMin    = "Home value is below the home equity investment minimum of $175,000"
	ReasonHEIValueAboveMax    = "Home value exceeds the home equity investment maximum of $3,000,000"
	ReasonHEICLTVTooHigh      = "Combined loan-to-value exceeds the 80% limit"
	ReasonHEIInvestmentTooLow = "Available investment amount falls below the $15,000 minimum"
)

// Generic reasons reported when neither product qualifies. Deliberately
// product-agnostic: the caller sees why the property cannot proceed without
// being pointed at either program.
const (
	ReasonStateNotServed        = "We do not currently serve properties in this state"
	ReasonPropertyTypeNotServed = "We do not currently support this property type"
	ReasonOwnershipNotServed    = "Homes held by an LLC, corporation, or partnership are not supported"
	ReasonValueBelowMinimum     = "Home value is below our $175,000 minimum"
	ReasonValueAboveMaximum     = "Home value exceeds our $3,000,000 maximum"
	ReasonLTVTooHigh            = "Mortgage balance is too high relative to the home value"
	ReasonEquityBelowMinimum    = "Available equity falls below our $15,000 minimum"
)
