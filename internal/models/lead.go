package models

import (
	"time"

	"oakline-partners/internal/eligibility"
)

// LeadStatus tracks a lead through intake. Quotes land as qualified or
// unqualified depending on the decision; only qualified leads can be
// submitted downstream.
type LeadStatus string

const (
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusSubmitted   LeadStatus = "submitted"
)

// Address is the parsed property address a quote runs against.
type Address struct {
	StreetAddress string `json:"streetAddress" bson:"streetAddress"`
	City          string `json:"city" bson:"city"`
	State         string `json:"state" bson:"state"`
	ZipCode       string `json:"zipCode" bson:"zipCode"`
}

// Homeowner carries the contact details collected when a partner submits a
// qualified lead.
type Homeowner struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
}

// Lead is one evaluated property for one partner. The attributes snapshot
// and both product verdicts are persisted exactly as the engine produced
// them, so a lead can be displayed or submitted later without re-evaluating.
type Lead struct {
	LeadID           string                         `json:"leadId" bson:"leadId"`
	PartnerID        string                         `json:"partnerId" bson:"partnerId"`
	Address          Address                        `json:"address" bson:"address"`
	Attributes       eligibility.PropertyAttributes `json:"attributes" bson:"attributes"`
	Decision         eligibility.Decision           `json:"decision" bson:"decision"`
	Homeowner        *Homeowner                     `json:"homeowner,omitempty" bson:"homeowner,omitempty"`
	Status           LeadStatus                     `json:"status" bson:"status"`
	FundingReference string                         `json:"fundingReference,omitempty" bson:"fundingReference,omitempty"`
	CreatedAt        time.Time                      `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time                      `json:"updatedAt" bson:"updatedAt"`
}

type PaginationMeta struct {
	Total  int64   `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
	Next   *string `json:"next,omitempty"`
	Prev   *string `json:"prev,omitempty"`
}

type PaginatedLeadsResponse struct {
	Data []Lead         `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
