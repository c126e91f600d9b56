package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dev-portfolio/internal/entity"
	"dev-portfolio/internal/usecase"
	"dev-portfolio/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutUseCase is a mock implementation of CheckoutUseCase
type MockCheckoutUseCase struct {
	mock.Mock
}

func (m *MockCheckoutUseCase) CreateSession(amount int64, currency, name string) (*entity.CheckoutSession, error) {
	args := m.Called(amount, currency, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CheckoutSession), args.Error(1)
}

var _ usecase.CheckoutUseCase = (*MockCheckoutUseCase)(nil)

func newCheckoutHandler(uc usecase.CheckoutUseCase) *CheckoutHandler {
	return NewCheckoutHandler(uc, logger.New())
}

func TestCreateCheckoutSession_Success(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	handler := newCheckoutHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/api/create-checkout-session", handler.CreateCheckoutSession)

	mockUseCase.On("CreateSession", int64(500), "", "").
		Return(&entity.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/create-checkout-session", bytes.NewBufferString(`{"amount":500}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "cs_test_123", response["id"])
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", response["url"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateCheckoutSession_NotConfigured(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	handler := newCheckoutHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/api/create-checkout-session", handler.CreateCheckoutSession)

	mockUseCase.On("CreateSession", int64(500), "", "").
		Return(nil, usecase.ErrStripeNotConfigured)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/create-checkout-session", bytes.NewBufferString(`{"amount":500}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, usecase.ErrStripeNotConfigured.Error(), response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateCheckoutSession_ForwardsCurrencyAndName(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	handler := newCheckoutHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/api/create-checkout-session", handler.CreateCheckoutSession)

	mockUseCase.On("CreateSession", int64(2500), "eur", "Consultation").
		Return(&entity.CheckoutSession{ID: "cs_test_456", URL: "https://checkout.stripe.com/pay/cs_test_456"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/create-checkout-session",
		bytes.NewBufferString(`{"amount":2500,"currency":"eur","name":"Consultation"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateCheckoutSession_MalformedBody(t *testing.T) {
	mockUseCase := new(MockCheckoutUseCase)
	handler := newCheckoutHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/api/create-checkout-session", handler.CreateCheckoutSession)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/create-checkout-session", bytes.NewBufferString(`{"amount":`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
}
