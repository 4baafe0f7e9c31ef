package validators

import (
	"oakline-partners/internal/models"
)

type LeadValidator interface {
	ValidateQuote(req *models.QuoteRequest) error
	ValidateSubmit(req *models.SubmitLeadRequest) error
}

type PayoffValidator interface {
	ValidatePayoff(req *models.PayoffRequest) error
}

type PartnerValidator interface {
	ValidateRegister(partner *models.Partner) error
	ValidateLogin(email, password string) error
}
