// Package cache provides Redis caching for the oakline-partners API.
package cache

import (
	"fmt"
	"strings"
)

// streetAbbrevs canonicalizes the suffix spellings partners mix freely, so
// "Juniper Court" and "Juniper Ct" land on the same decision entry.
var streetAbbrevs = strings.NewReplacer(
	" drive", " dr",
	" street", " st",
	" avenue", " ave",
	" road", " rd",
	" boulevard", " blvd",
	" lane", " ln",
	" circle", " cir",
	" court", " ct",
	" terrace", " ter",
	" place", " pl",
	" highway", " hwy",
)

// NormalizeAddressComponent lowercases, trims, and abbreviates one component
// of a postal address for use in a cache key.
func NormalizeAddressComponent(s string) string {
	return streetAbbrevs.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// DecisionKey addresses the provider record and decision computed for one
// property. All four components are normalized so equivalent spellings
// collide.
func DecisionKey(street, city, state, zip string) string {
	return fmt.Sprintf("decision:street:%s:city:%s:state:%s:zip:%s",
		NormalizeAddressComponent(street),
		NormalizeAddressComponent(city),
		NormalizeAddressComponent(state),
		NormalizeAddressComponent(zip))
}

// LeadKey addresses a single cached lead.
func LeadKey(id string) string {
	return fmt.Sprintf("lead:%s", id)
}

// LeadListPaginatedKey addresses one page of a partner's lead list.
func LeadListPaginatedKey(partnerID string, offset, limit int) string {
	return fmt.Sprintf("leads:list:partner:%s:offset:%d:limit:%d", partnerID, offset, limit)
}

// LeadKeysSetKey addresses the registry set listing every cache key that
// mentions the lead. Invalidation walks this set.
func LeadKeysSetKey(leadID string) string {
	return fmt.Sprintf("lead:keys:%s", leadID)
}

// PartnerKey addresses a single cached partner account.
func PartnerKey(id string) string {
	return fmt.Sprintf("partner:%s", id)
}
