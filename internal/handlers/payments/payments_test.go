package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/walletservice"
	"github.com/greenriot/greenriot/internal/stripe"
	"github.com/greenriot/greenriot/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestPurchaseCoordinatesHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"object_id": 7, "amount": 3, "currency": "USD"}`

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		checkBody    func(t *testing.T, body dto.CoordinateCheckoutResponseDTO)
	}{
		{
			name: "Credits path returns coordinates inline",
			prepareMock: func() {
				service.EXPECT().PurchaseCoordinates(gomock.Any(), 1, gomock.Any()).Return(&walletservice.CoordinatePurchase{
					PaidWithCredits: true,
					Latitude:        40.4168,
					Longitude:       -3.7038,
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body dto.CoordinateCheckoutResponseDTO) {
				assert.NotNil(t, body.Coordinates)
				assert.Equal(t, 40.4168, body.Coordinates.Latitude)
				assert.Empty(t, body.URL)
			},
		},
		{
			name: "Card path returns checkout URL without coordinates",
			prepareMock: func() {
				service.EXPECT().PurchaseCoordinates(gomock.Any(), 1, gomock.Any()).Return(&walletservice.CoordinatePurchase{
					SessionURL: "https://checkout.test/cs_7",
					SessionID:  "cs_7",
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body dto.CoordinateCheckoutResponseDTO) {
				assert.Nil(t, body.Coordinates)
				assert.Equal(t, "https://checkout.test/cs_7", body.URL)
				assert.Equal(t, "cs_7", body.SessionID)
			},
		},
		{
			name: "Unknown object maps to 404",
			prepareMock: func() {
				service.EXPECT().PurchaseCoordinates(gomock.Any(), 1, gomock.Any()).Return(nil, domain.ErrObjectNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Unsupported currency maps to 400",
			prepareMock: func() {
				service.EXPECT().PurchaseCoordinates(gomock.Any(), 1, gomock.Any()).Return(nil, domain.ErrUnsupportedCurrency)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodPost, "/api/payments/coordinates", bytes.NewBufferString(body)))
			w := httptest.NewRecorder()
			handler.PurchaseCoordinates(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.checkBody != nil {
				var resp dto.CoordinateCheckoutResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&resp)
				tt.checkBody(t, resp)
			}
		})
	}
}

func TestSyncHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("No pending transactions", func(t *testing.T) {
		service.EXPECT().Sync(gomock.Any(), 1).Return(0, 0, nil)
		r := authed(httptest.NewRequest(http.MethodPost, "/api/payments/sync", nil))
		w := httptest.NewRecorder()
		handler.Sync(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SyncResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "No pending transactions found", body.Message)
	})

	t.Run("Partial settlement", func(t *testing.T) {
		service.EXPECT().Sync(gomock.Any(), 1).Return(1, 2, nil)
		r := authed(httptest.NewRequest(http.MethodPost, "/api/payments/sync", nil))
		w := httptest.NewRecorder()
		handler.Sync(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SyncResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 1, body.Updated)
		assert.Equal(t, 2, body.Total)
	})

	t.Run("Processor failure", func(t *testing.T) {
		service.EXPECT().Sync(gomock.Any(), 1).Return(0, 0, errors.New("api down"))
		r := authed(httptest.NewRequest(http.MethodPost, "/api/payments/sync", nil))
		w := httptest.NewRecorder()
		handler.Sync(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t)
	payload := `{"id":"evt_1","type":"checkout.session.completed"}`

	t.Run("Valid event acknowledged", func(t *testing.T) {
		service.EXPECT().HandleCheckoutCompleted(gomock.Any(), []byte(payload), "sig").
			Return(&domain.Transaction{ID: 1}, nil)
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(payload))
		r.Header.Set("Stripe-Signature", "sig")
		w := httptest.NewRecorder()
		handler.Webhook(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.WebhookResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.True(t, body.Received)
	})

	t.Run("Replay acknowledged without effect", func(t *testing.T) {
		service.EXPECT().HandleCheckoutCompleted(gomock.Any(), []byte(payload), "sig").Return(nil, nil)
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(payload))
		r.Header.Set("Stripe-Signature", "sig")
		w := httptest.NewRecorder()
		handler.Webhook(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bad signature maps to 400", func(t *testing.T) {
		service.EXPECT().HandleCheckoutCompleted(gomock.Any(), []byte(payload), "bad").
			Return(nil, stripe.ErrInvalidSignature)
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(payload))
		r.Header.Set("Stripe-Signature", "bad")
		w := httptest.NewRecorder()
		handler.Webhook(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
