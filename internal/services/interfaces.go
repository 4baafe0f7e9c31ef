package services

import (
	"context"

	"oakline-partners/pkg/funding"
	"oakline-partners/pkg/homefacts"
)

// PropertyDataProvider is the slice of the HomeFacts client the quote flow
// needs. Satisfied by both homefacts.Client and homefacts.SandboxClient.
type PropertyDataProvider interface {
	SearchByAddress(ctx context.Context, street, city, state, zip string) (*homefacts.PropertyRecord, error)
}

// FundingSubmitter posts qualified leads to the downstream funding network.
type FundingSubmitter interface {
	Submit(ctx context.Context, sub *funding.Submission) (string, error)
}
