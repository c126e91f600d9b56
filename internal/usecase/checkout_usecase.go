package usecase

import (
	"errors"

	"dev-portfolio/internal/entity"
	"dev-portfolio/pkg/config"
	"dev-portfolio/pkg/logger"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

const (
	DefaultCurrency    = "usd"
	DefaultProductName = "Support My Work"
)

var ErrStripeNotConfigured = errors.New("stripe is not configured, add STRIPE_SECRET_KEY to environment variables")

type CheckoutUseCase interface {
	CreateSession(amount int64, currency, name string) (*entity.CheckoutSession, error)
}

type checkoutUseCase struct {
	sessions *session.Client
	appURL   string
	logger   *logger.Logger
}

// NewCheckoutUseCase leaves the Stripe client nil when no secret key is
// configured; CreateSession then fails before touching the network.
func NewCheckoutUseCase(cfg *config.Config, logger *logger.Logger) CheckoutUseCase {
	uc := &checkoutUseCase{
		appURL: cfg.AppURL,
		logger: logger,
	}

	if cfg.StripeSecretKey != "" {
		uc.sessions = &session.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: cfg.StripeSecretKey,
		}
	}

	return uc
}

// CreateSession creates a one-time Stripe Checkout session for the given
// amount in minor currency units. The amount is forwarded as given.
func (uc *checkoutUseCase) CreateSession(amount int64, currency, name string) (*entity.CheckoutSession, error) {
	if uc.sessions == nil {
		return nil, ErrStripeNotConfigured
	}

	if currency == "" {
		currency = DefaultCurrency
	}
	if name == "" {
		name = DefaultProductName
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(name),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(uc.appURL + "/?success=true"),
		CancelURL:  stripe.String(uc.appURL + "/?canceled=true"),
	}

	s, err := uc.sessions.New(params)
	if err != nil {
		uc.logger.Error("Stripe session creation failed: %v", err)
		return nil, err
	}

	return &entity.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
