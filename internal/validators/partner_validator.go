package validators

import (
	"errors"
	"regexp"

	"oakline-partners/internal/models"
)

type partnerValidator struct{}

func NewPartnerValidator() PartnerValidator {
	return &partnerValidator{}
}

func (v *partnerValidator) ValidateRegister(partner *models.Partner) error {
	if partner.FullName == "" || partner.Email == "" || partner.Password == "" {
		return errors.New("full name, email, and password are required")
	}

	if len(partner.FullName) < 2 || len(partner.FullName) > 100 {
		return errors.New("full name must be between 2 and 100 characters")
	}

	if partner.Company == "" {
		return errors.New("company name is required")
	}

	if len(partner.Company) > 200 {
		return errors.New("company name exceeds maximum length of 200 characters")
	}

	if len(partner.Password) < 6 || len(partner.Password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}

	if partner.Phone != "" && len(partner.Phone) > 15 {
		return errors.New("phone number exceeds maximum length of 15 characters")
	}

	if !isValidEmail(partner.Email) {
		return errors.New("invalid email format")
	}

	if partner.Phone != "" && !isValidPhone(partner.Phone) {
		return errors.New("invalid phone format")
	}

	return nil
}

func (v *partnerValidator) ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	if !isValidEmail(email) {
		return errors.New("invalid email format")
	}

	if len(password) < 6 || len(password) > 100 {
		return errors.New("password must be between 6 and 100 characters")
	}

	return nil
}

func isValidEmail(email string) bool {
	regex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return regex.MatchString(email)
}

func isValidPhone(phone string) bool {
	regex := regexp.MustCompile(`^(\+\d{1,3}[- ]?)?\d{10}$`)
	return regex.MatchString(phone)
}
