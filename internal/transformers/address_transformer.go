package transformers

import (
	"regexp"
	"strings"

	"oakline-partners/internal/models"
)

var (
	fullAddressRe = regexp.MustCompile(`^(.*?),\s*([^,]+),\s*([A-Z]{2})\s*(\d{5})$`)
	stateRe       = regexp.MustCompile(`^[A-Z]{2}$`)
	zipRe         = regexp.MustCompile(`^\d{5}$`)
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

func (t *addressTransformer) Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// Parse splits a free-text search like "123 Main St, Austin, TX 78701" into
// address components. Inputs that don't match the full form degrade
// field-by-field: missing state or zip stay empty rather than failing, so
// the caller decides how much address is enough.
func (t *addressTransformer) Parse(search string) models.Address {
	search = t.Normalize(search)
	if search == "" {
		return models.Address{}
	}

	if matches := fullAddressRe.FindStringSubmatch(search); len(matches) == 5 {
		return models.Address{
			StreetAddress: t.Normalize(matches[1]),
			City:          t.Normalize(matches[2]),
			State:         t.Normalize(matches[3]),
			ZipCode:       t.Normalize(matches[4]),
		}
	}

	parts := strings.Split(search, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	if len(parts) >= 2 {
		addr := models.Address{
			StreetAddress: t.Normalize(parts[0]),
			City:          t.Normalize(parts[1]),
		}
		if len(parts) > 2 {
			stateZip := strings.Fields(parts[2])
			switch {
			case len(stateZip) >= 2:
				addr.State = t.Normalize(stateZip[0])
				addr.ZipCode = t.Normalize(stateZip[1])
			case len(stateZip) == 1 && stateRe.MatchString(stateZip[0]):
				addr.State = t.Normalize(stateZip[0])
			case len(stateZip) == 1 && zipRe.MatchString(stateZip[0]):
				addr.ZipCode = t.Normalize(stateZip[0])
			}
		}
		return addr
	}

	return models.Address{StreetAddress: search}
}
