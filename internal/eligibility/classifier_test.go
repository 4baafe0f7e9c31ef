package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oakline-partners/internal/eligibility"
)

func TestClassifyPropertyType_ExactSynonyms(t *testing.T) {
	cases := map[string]eligibility.PropertyType{
		"Single Family Residence": eligibility.PropertySingleFamily,
		"SFR":                     eligibility.PropertySingleFamily,
		"Residential":             eligibility.PropertySingleFamily,
		"Condominium":             eligibility.PropertyCondo,
		"Townhouse":               eligibility.PropertyTownhouse,
		"Duplex":                  eligibility.PropertyMultiFamily,
		"Triplex":                 eligibility.PropertyMultiFamily,
		"Fourplex":                eligibility.PropertyMultiFamily,
		"Multifamily":             eligibility.PropertyMultiFamily,
		"Mobile Home":             eligibility.PropertyManufactured,
		"Apartment":               eligibility.PropertyApartment,
		"Vacant Land":             eligibility.PropertyLand,
	}
	for raw, want := range cases {
		assert.Equal(t, want, eligibility.ClassifyPropertyType(raw), "input %q", raw)
	}
}

func TestClassifyPropertyType_CaseInsensitive(t *testing.T) {
	assert.Equal(t, eligibility.PropertySingleFamily, eligibility.ClassifyPropertyType("single family residence"))
	assert.Equal(t, eligibility.PropertyCondo, eligibility.ClassifyPropertyType("CONDOMINIUM"))
	assert.Equal(t, eligibility.PropertyManufactured, eligibility.ClassifyPropertyType("  mobile home  "))
}

func TestClassifyPropertyType_SubstringFallback(t *testing.T) {
	t.Run("family marker wins", func(t *testing.T) {
		assert.Equal(t, eligibility.PropertySingleFamily, eligibility.ClassifyPropertyType("Detached Single Family Home"))
	})
	t.Run("family marker outranks multi", func(t *testing.T) {
		// Priority order: FAMILY is checked before MULTI.
		assert.Equal(t, eligibility.PropertySingleFamily, eligibility.ClassifyPropertyType("Multi Family Dwelling"))
	})
	t.Run("condo unit", func(t *testing.T) {
		assert.Equal(t, eligibility.PropertyCondo, eligibility.ClassifyPropertyType("High-Rise Condo Unit"))
	})
	t.Run("row townhouse", func(t *testing.T) {
		assert.Equal(t, eligibility.PropertyTownhouse, eligibility.ClassifyPropertyType("Row Townhouse"))
	})
	t.Run("multi unit", func(t *testing.T) {
		assert.Equal(t, eligibility.PropertyMultiFamily, eligibility.ClassifyPropertyType("Multi-Unit Dwelling"))
	})
	t.Run("land parcel", func(t *testing.T) {
		assert.Equal(t, eligibility.PropertyLand, eligibility.ClassifyPropertyType("Agricultural Land Parcel"))
	})
}

func TestClassifyPropertyType_DefaultsToSingleFamily(t *testing.T) {
	for _, raw := range []string{"", "   ", "Castle", "???", "Houseboat"} {
		assert.Equal(t, eligibility.PropertySingleFamily, eligibility.ClassifyPropertyType(raw), "input %q", raw)
	}
}

func TestClassifyOwnership_EntityMarkers(t *testing.T) {
	cases := map[string]eligibility.OwnershipType{
		"Sunrise Holdings LLC":      eligibility.OwnershipLLC,
		"ACME L.L.C.":               eligibility.OwnershipLLC,
		"Oakview Limited Liability": eligibility.OwnershipLLC,
		"The Smith Family Trust":    eligibility.OwnershipTrust,
		"JOHN DOE TRUSTEE":          eligibility.OwnershipTrust,
		"JANE M DOE TR":             eligibility.OwnershipTrust,
		"ACME INC":                  eligibility.OwnershipCorporation,
		"GLOBEX CORP":               eligibility.OwnershipCorporation,
		"WAYNE CO.":                 eligibility.OwnershipCorporation,
		"DOE FAMILY LP":             eligibility.OwnershipPartnership,
		"SMITH & ASSOCIATES LLP":    eligibility.OwnershipPartnership,
		"OAK VENTURES PARTNERSHIP":  eligibility.OwnershipPartnership,
	}
	for raw, want := range cases {
		assert.Equal(t, want, eligibility.ClassifyOwnership(raw), "input %q", raw)
	}
}

func TestClassifyOwnership_PriorityOrder(t *testing.T) {
	// LLC markers are tested before trust markers.
	assert.Equal(t, eligibility.OwnershipLLC, eligibility.ClassifyOwnership("SMITH TRUST LLC"))
}

func TestClassifyOwnership_TrustTokenIsBounded(t *testing.T) {
	// "TR" must appear as a standalone word, not inside another one.
	assert.Equal(t, eligibility.OwnershipTrust, eligibility.ClassifyOwnership("DOE JANE TR"))
	assert.Equal(t, eligibility.OwnershipPersonal, eligibility.ClassifyOwnership("PATRICK TRENT"))
}

func TestClassifyOwnership_DefaultsToPersonal(t *testing.T) {
	for _, raw := range []string{"", "JOHN SMITH", "MARY JANE DOE", "SMITH JOHN & SMITH JANE"} {
		assert.Equal(t, eligibility.OwnershipPersonal, eligibility.ClassifyOwnership(raw), "input %q", raw)
	}
}
