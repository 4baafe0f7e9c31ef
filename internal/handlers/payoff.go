package handlers

import (
	"net/http"

	"oakline-partners/internal/models"
	"oakline-partners/internal/services"

	"github.com/gin-gonic/gin"
)

type PayoffHandler struct {
	payoffService *services.PayoffService
}

func NewPayoffHandler(payoffService *services.PayoffService) *PayoffHandler {
	return &PayoffHandler{payoffService: payoffService}
}

// ProjectPayoff godoc
// @Summary Preview a home-equity payoff
// @Description Project what the homeowner would owe the investor at the end of the term for a given investment and appreciation rate
// @Tags Calculators
// @Accept json
// @Produce json
// @Param payoff body models.PayoffRequest true "Projection inputs"
// @Security BearerAuth
// @Success 200 {object} eligibility.PayoffProjection
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /calculators/payoff [post]
func (h *PayoffHandler) ProjectPayoff(c *gin.Context) {
	var req models.PayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projection, err := h.payoffService.ProjectPayoff(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, projection)
}
