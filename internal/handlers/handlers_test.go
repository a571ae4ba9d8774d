package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	_ "github.com/greenriot/greenriot/docs"
	"github.com/greenriot/greenriot/internal/handlers/accounts"
	"github.com/greenriot/greenriot/internal/handlers/admin"
	authhandlers "github.com/greenriot/greenriot/internal/handlers/auth"
	"github.com/greenriot/greenriot/internal/handlers/objects"
	"github.com/greenriot/greenriot/internal/handlers/payments"
	"github.com/greenriot/greenriot/internal/handlers/wallet"
	"github.com/greenriot/greenriot/internal/service"
	"github.com/greenriot/greenriot/pkg/middleware"
)

type noopStore struct{}

func (noopStore) Get(ctx context.Context, key string) (*middleware.CachedResponse, error) {
	return nil, nil
}

func (noopStore) Save(ctx context.Context, key string, response middleware.CachedResponse, ttl time.Duration) error {
	return nil
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		WalletService:  wallet.NewMockService(ctrl),
		PaymentService: payments.NewMockService(ctrl),
		ObjectService:  objects.NewMockService(ctrl),
		AccountService: accounts.NewMockService(ctrl),
		AdminService:   admin.NewMockService(ctrl),
	}

	h := New(services, middleware.NewIPRateLimiter(rate.Limit(100), 200), noopStore{})
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockObjectHandler := NewMockObjectHandler(ctrl)
	mockAccountHandler := NewMockAccountHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		WalletHandler:  mockWalletHandler,
		PaymentHandler: mockPaymentHandler,
		ObjectHandler:  mockObjectHandler,
		AccountHandler: mockAccountHandler,
		AdminHandler:   mockAdminHandler,
		rateLimiter:    middleware.NewIPRateLimiter(rate.Limit(100), 200),
		idempotency:    middleware.Idempotency(noopStore{}),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/payments/webhook", http.StatusOK},
		{"GET", "/api/wallet", http.StatusUnauthorized},
		{"GET", "/api/wallet/transactions", http.StatusUnauthorized},
		{"POST", "/api/wallet/deposit", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdraw", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdraw-real", http.StatusUnauthorized},
		{"POST", "/api/payments/coordinates", http.StatusUnauthorized},
		{"POST", "/api/payments/sync", http.StatusUnauthorized},
		{"GET", "/api/objects/abandoned", http.StatusUnauthorized},
		{"POST", "/api/account/payout", http.StatusUnauthorized},
		{"GET", "/api/security/status", http.StatusUnauthorized},
		{"GET", "/api/security/rate-limit", http.StatusUnauthorized},
		{"POST", "/api/admin/make-admin", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
