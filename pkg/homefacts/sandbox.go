package homefacts

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// SandboxClient serves deterministic canned records so the intake flow can
// run in development and demos without vendor credentials. Estimates vary
// with the address, so different searches exercise different offers.
type SandboxClient struct{}

func NewSandboxClient() *SandboxClient {
	return &SandboxClient{}
}

func (s *SandboxClient) SearchByAddress(ctx context.Context, street, city, state, zip string) (*PropertyRecord, error) {
	h := fnv.New32a()
	h.Write([]byte(strings.ToUpper(street + "|" + city + "|" + state + "|" + zip)))
	n := h.Sum32()

	value := 250000 + float64(n%12)*75000
	balance := math.Round(value * (0.20 + float64(n%5)*0.12))

	return &PropertyRecord{
		PropertyID:               fmt.Sprintf("HF-SANDBOX-%08X", n),
		OwnerNames:               "SANDBOX HOMEOWNER",
		State:                    strings.ToUpper(strings.TrimSpace(state)),
		PropertyType:             "Single Family Residence",
		EstimatedValue:           value,
		EstimatedMortgageBalance: balance,
	}, nil
}
