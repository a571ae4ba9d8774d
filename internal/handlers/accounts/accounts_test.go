package accounts

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/greenriot/greenriot/internal/service/walletservice"
	"github.com/greenriot/greenriot/pkg/auth"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestSetPayoutAccountHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Account connected",
			body: `{"stripe_account_id": "acct_1", "card_number": "4242424242424242"}`,
			prepareMock: func() {
				service.EXPECT().SetPayoutAccount(gomock.Any(), 1, "acct_1", "4242424242424242").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid card number maps to 422",
			body: `{"stripe_account_id": "acct_1", "card_number": "1234"}`,
			prepareMock: func() {
				service.EXPECT().SetPayoutAccount(gomock.Any(), 1, "acct_1", "1234").Return(walletservice.ErrInvalidCardNumber)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Missing account id",
			body:         `{"card_number": "4242424242424242"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/account/payout", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.SetPayoutAccount(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
