package eligibility

import "strings"

// Exact synonym table for provider property-type strings, keyed by the
// uppercased input. Checked before the substring fallbacks below.
var propertyTypeSynonyms = map[string]PropertyType{
	"SINGLE FAMILY":           PropertySingleFamily,
	"SINGLE FAMILY RESIDENCE": PropertySingleFamily,
	"SFR":                     PropertySingleFamily,
	"RESIDENTIAL":             PropertySingleFamily,
	"CONDO":                   PropertyCondo,
	"CONDOMINIUM":             PropertyCondo,
	"TOWNHOUSE":               PropertyTownhouse,
	"DUPLEX":                  PropertyMultiFamily,
	"TRIPLEX":                 PropertyMultiFamily,
	"FOURPLEX":                PropertyMultiFamily,
	"MULTIFAMILY":             PropertyMultiFamily,
	"MOBILE HOME":             PropertyManufactured,
	"MANUFACTURED":            PropertyManufactured,
	"APARTMENT":               PropertyApartment,
	"VACANT LAND":             PropertyLand,
	"LAND":                    PropertyLand,
}

// ClassifyPropertyType normalizes a raw provider property-type string into a
// canonical category. Exact synonyms win; otherwise substring checks run in
// priority order. Unrecognized or empty input defaults to Single Family, so
// classification is total and never fails.
func ClassifyPropertyType(rawType string) PropertyType {
	norm := strings.ToUpper(strings.TrimSpace(rawType))
	if norm == "" {
		return PropertySingleFamily
	}
	if t, ok := propertyTypeSynonyms[norm]; ok {
		return t
	}
	switch {
	case strings.Contains(norm, "FAMILY"),
		strings.Contains(norm, "SFR"),
		strings.Contains(norm, "RESIDENTIAL"):
		return PropertySingleFamily
	case strings.Contains(norm, "CONDO"):
		return PropertyCondo
	case strings.Contains(norm, "TOWNHOUSE"):
		return PropertyTownhouse
	case strings.Contains(norm, "MULTI"):
		return PropertyMultiFamily
	case strings.Contains(norm, "LAND"):
		return PropertyLand
	}
	return PropertySingleFamily
}

// ClassifyOwnership infers the ownership structure from the provider's
// owner-names text. Markers are tested in priority order: entity markers can
// co-occur in a single name line, and the first category wins. Anything
// without an entity marker is treated as personal ownership.
func ClassifyOwnership(ownerNamesText string) OwnershipType {
	norm := strings.ToUpper(strings.TrimSpace(ownerNamesText))
	if norm == "" {
		return OwnershipPersonal
	}
	switch {
	case containsAny(norm, "LLC", "L.L.C.", "LIMITED LIABILITY"):
		return OwnershipLLC
	case containsAny(norm, "TRUST", "TRUSTEE") || hasToken(norm, "TR"):
		return OwnershipTrust
	case containsAny(norm, "CORPORATION", "CORP", "INC", " CO.", " CO,"):
		return OwnershipCorporation
	case containsAny(norm, "PARTNERSHIP", "LLP", "L.P.", "LP"):
		return OwnershipPartnership
	}
	return OwnershipPersonal
}

func containsAny(s string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// hasToken reports whether tok appears as a standalone word, so "JOHN DOE TR"
// matches but "PATRICIA" does not.
func hasToken(s, tok string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9')
	})
	for _, f := range fields {
		if f == tok {
			return true
		}
	}
	return false
}
