package http

import (
	"net/http"

	"dev-portfolio/internal/usecase"
	"dev-portfolio/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
	logger          *logger.Logger
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase, logger *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		logger:          logger,
	}
}

// Amount is deliberately not validated here: the payment processor is the
// authority on what it accepts, so the value is forwarded as given.
type CreateCheckoutSessionRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Name     string `json:"name"`
}

// CreateCheckoutSession godoc
// @Summary      Create checkout session
// @Description  Create a one-time Stripe Checkout session for a donation or consultation booking
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request body CreateCheckoutSessionRequest true "Amount in minor currency units, optional currency and display name"
// @Success      200  {object}  entity.CheckoutSession
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /create-checkout-session [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.checkoutUseCase.CreateSession(req.Amount, req.Currency, req.Name)
	if err != nil {
		h.logger.Error("Failed to create checkout session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}
