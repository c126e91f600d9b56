package usecase

import (
	"testing"

	"dev-portfolio/pkg/config"
	"dev-portfolio/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutUseCase_NotConfigured(t *testing.T) {
	cfg := &config.Config{
		StripeSecretKey: "",
		AppURL:          "http://localhost:3000",
	}

	uc := NewCheckoutUseCase(cfg, logger.New())

	// Must fail before any network call is attempted
	session, err := uc.CreateSession(500, "", "")
	require.ErrorIs(t, err, ErrStripeNotConfigured)
	assert.Nil(t, session)
}

func TestCheckoutUseCase_NotConfigured_IgnoresAmount(t *testing.T) {
	cfg := &config.Config{AppURL: "http://localhost:3000"}
	uc := NewCheckoutUseCase(cfg, logger.New())

	// Zero and negative amounts are forwarded, not validated, so the
	// configuration check is the only thing that can reject them here
	for _, amount := range []int64{0, -100, 1} {
		_, err := uc.CreateSession(amount, "usd", "Support My Work")
		require.ErrorIs(t, err, ErrStripeNotConfigured)
	}
}
