package transformers

import (
	"strings"

	"oakline-partners/internal/eligibility"
	"oakline-partners/pkg/homefacts"
)

// Provider estimates below these floors are treated as missing and replaced
// by the documented defaults.
const (
	homeValueFloor   = 50000.0
	defaultHomeValue = 500000.0
	mortgageFloor    = 1000.0
)

type attributesTransformer struct{}

func NewAttributesTransformer() AttributesTransformer {
	return &attributesTransformer{}
}

// FromPropertyRecord maps a provider record into engine attributes. Partner
// overrides replace the provider estimates outright; only untouched fields
// go through the fallback policy (home value below $50,000 defaults to
// $500,000, mortgage below $1,000 defaults to half the home value). Raw type
// and owner names run through the classifiers, so the result is always a
// complete, canonical attribute set.
func (t *attributesTransformer) FromPropertyRecord(record *homefacts.PropertyRecord, overrides AttributeOverrides) eligibility.PropertyAttributes {
	var homeValue, mortgage float64
	var state, rawType, ownerNames string
	if record != nil {
		homeValue = record.EstimatedValue
		mortgage = record.EstimatedMortgageBalance
		state = record.State
		rawType = record.PropertyType
		ownerNames = record.OwnerNames
	}

	if overrides.HomeValue != nil {
		homeValue = *overrides.HomeValue
	} else if homeValue < homeValueFloor {
		homeValue = defaultHomeValue
	}
	if overrides.MortgageBalance != nil {
		mortgage = *overrides.MortgageBalance
	} else if mortgage < mortgageFloor {
		mortgage = homeValue / 2
	}

	return eligibility.PropertyAttributes{
		HomeValue:       homeValue,
		MortgageBalance: mortgage,
		State:           strings.ToUpper(strings.TrimSpace(state)),
		PropertyType:    eligibility.ClassifyPropertyType(rawType),
		OwnershipType:   eligibility.ClassifyOwnership(ownerNames),
	}
}
