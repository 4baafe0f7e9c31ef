package transformers

import (
	"oakline-partners/internal/eligibility"
	"oakline-partners/internal/models"
	"oakline-partners/pkg/homefacts"
)

// AttributeOverrides carries the partner's slider adjustments. A nil field
// means "use the provider estimate".
type AttributeOverrides struct {
	HomeValue       *float64
	MortgageBalance *float64
}

type AttributesTransformer interface {
	FromPropertyRecord(record *homefacts.PropertyRecord, overrides AttributeOverrides) eligibility.PropertyAttributes
}

type AddressTransformer interface {
	Normalize(input string) string
	Parse(search string) models.Address
}
