package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"oakline-partners/internal/auth"
	"oakline-partners/internal/errors"
	"oakline-partners/internal/models"
	"oakline-partners/internal/repositories"
	"oakline-partners/internal/validators"
	"oakline-partners/pkg/config"
	"oakline-partners/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type PartnerService struct {
	repo      repositories.PartnerRepository
	validator validators.PartnerValidator
	cfg       *config.Config
}

func NewPartnerService(repo repositories.PartnerRepository, validator validators.PartnerValidator, cfg *config.Config) *PartnerService {
	return &PartnerService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Register creates a partner account in the pending state. A token is issued
// immediately so the partner can sign in and watch their approval status, but
// the account-status gate keeps pending accounts away from quoting.
func (s *PartnerService) Register(ctx context.Context, partner *models.Partner) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateRegister(partner); err != nil {
		return nil, errors.NewAppError(err.Error(), errors.MsgInvalidParameters, errors.ErrCodeInvalidParameters, http.StatusBadRequest, err)
	}

	if existing, err := s.repo.FindByEmail(ctx, partner.Email); err == nil && existing != nil {
		return nil, errors.NewAppError("email already registered", errors.MsgEmailTaken, errors.ErrCodeEmailTaken, http.StatusConflict, nil)
	} else if err != nil && err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(partner.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	partner.ID = primitive.NewObjectID()
	partner.Password = string(hashedPassword)
	partner.Status = models.PartnerStatusPending
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = time.Now()

	if err := s.repo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to register partner: %w", err)
	}

	logger.GlobalLogger.Printf("Partner registered: partner=%s, company=%s, status=%s", partner.ID.Hex(), partner.Company, partner.Status)
	return s.issueToken(partner)
}

// Login verifies credentials and issues a fresh token carrying the partner's
// current account status.
func (s *PartnerService) Login(ctx context.Context, email, password string) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, errors.NewAppError(err.Error(), errors.MsgInvalidParameters, errors.ErrCodeInvalidParameters, http.StatusBadRequest, err)
	}

	partner, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to query partner: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	return s.issueToken(partner)
}

func (s *PartnerService) issueToken(partner *models.Partner) (*auth.TokenDetails, error) {
	token, err := auth.GenerateJWT(partner.ID.Hex(), partner.FullName, partner.Email, partner.Company, string(partner.Status), s.cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func invalidCredentials() *errors.AppError {
	return errors.NewAppError("invalid email or password", errors.MsgInvalidCredentials, errors.ErrCodeInvalidCredentials, http.StatusUnauthorized, nil)
}
