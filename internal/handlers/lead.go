package handlers

import (
	"net/http"
	"strconv"

	"oakline-partners/internal/models"
	"oakline-partners/internal/services"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	quoteService *services.QuoteService
	leadService  *services.LeadService
}

func NewLeadHandler(quoteService *services.QuoteService, leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{
		quoteService: quoteService,
		leadService:  leadService,
	}
}

// Quote godoc
// @Summary Quote a property address
// @Description Fetch the property record for an address, evaluate both products, and store the result as a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param quote body models.QuoteRequest true "Address to quote, with optional value/mortgage overrides"
// @Security BearerAuth
// @Success 201 {object} models.Lead
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /leads/quote [post]
func (h *LeadHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.quoteService.Quote(c, c.GetString("partner_id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// ListLeads godoc
// @Summary List the partner's leads
// @Description Get a paginated list of the authenticated partner's leads, newest first
// @Tags Leads
// @Accept json
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(10)
// @Security BearerAuth
// @Success 200 {object} models.PaginatedLeadsResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	baseURL := c.Request.URL.Path
	response, err := h.leadService.ListLeads(c, c.GetString("partner_id"), offset, limit, baseURL, c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLead godoc
// @Summary Get a lead by ID
// @Description Get one of the authenticated partner's leads, including both product verdicts
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Security BearerAuth
// @Success 200 {object} models.Lead
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadService.GetLead(c, c.GetString("partner_id"), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// SubmitLead godoc
// @Summary Submit a qualified lead
// @Description Send a qualified lead with homeowner contact details to the funding network
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param homeowner body models.SubmitLeadRequest true "Homeowner contact details"
// @Security BearerAuth
// @Success 200 {object} models.Lead
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /leads/{id}/submit [post]
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req models.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner := partnerFromContext(c)
	if partner == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "partner account not resolved"})
		return
	}

	lead, err := h.leadService.Submit(c, partner, c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// partnerFromContext returns the partner loaded by the account-status
// middleware.
func partnerFromContext(c *gin.Context) *models.Partner {
	value, exists := c.Get("partner")
	if !exists {
		return nil
	}
	partner, ok := value.(*models.Partner)
	if !ok {
		return nil
	}
	return partner
}
