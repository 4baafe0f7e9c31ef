package handlers

import (
	"net/http"

	"oakline-partners/internal/models"
	"oakline-partners/internal/services"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	partnerService *services.PartnerService
}

func NewPartnerHandler(partnerService *services.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// RegisterRequest is the signup payload for a new partner account.
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Jordan Alvarez"`
	Company  string `json:"company" binding:"required" example:"Alvarez Realty Group"`
	Email    string `json:"email" binding:"required,email" example:"jordan@alvarezrealty.com"`
	Phone    string `json:"phone" example:"5550134567"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jordan@alvarezrealty.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

// TokenResponse represents the token response
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Register godoc
// @Summary Register a partner account
// @Description Create a new partner account. Accounts start in the pending state and must be approved before quoting.
// @Tags Partners
// @Accept json
// @Produce json
// @Param partner body RegisterRequest true "Partner registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /partners/register [post]
func (h *PartnerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner := &models.Partner{
		FullName: req.FullName,
		Company:  req.Company,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	token, err := h.partnerService.Register(c, partner)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "status": partner.Status})
}

// Login godoc
// @Summary Login partner
// @Description Authenticate a partner and return a JWT token carrying the current account status
// @Tags Partners
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /partners/login [post]
func (h *PartnerHandler) Login(c *gin.Context) {
	var creds LoginRequest
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.partnerService.Login(c, creds.Email, creds.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
