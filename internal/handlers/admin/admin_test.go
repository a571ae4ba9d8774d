package admin

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
	"golang.org/x/time/rate"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/adminservice"
	"github.com/greenriot/greenriot/pkg/auth"
	"github.com/greenriot/greenriot/pkg/middleware"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, middleware.NewIPRateLimiter(rate.Limit(5), 10))
	return handler, service
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestMakeAdminHandler(t *testing.T) {
	handler, service := NewMock(t)

	body := func() *bytes.Buffer { return bytes.NewBufferString(`{"user_id":7}`) }

	service.EXPECT().MakeAdmin(gomock.Any(), 1, 7).Return(nil)
	w := httptest.NewRecorder()
	handler.MakeAdmin(w, authed(httptest.NewRequest(http.MethodPost, "/api/admin/make-admin", body())))
	assert.Equal(t, http.StatusOK, w.Code)

	service.EXPECT().MakeAdmin(gomock.Any(), 1, 7).Return(adminservice.ErrNotAdmin)
	w = httptest.NewRecorder()
	handler.MakeAdmin(w, authed(httptest.NewRequest(http.MethodPost, "/api/admin/make-admin", body())))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	handler.MakeAdmin(w, authed(httptest.NewRequest(http.MethodPost, "/api/admin/make-admin", bytes.NewBufferString(`{}`))))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	service.EXPECT().MakeAdmin(gomock.Any(), 1, 7).Return(errors.New("db error"))
	w = httptest.NewRecorder()
	handler.MakeAdmin(w, authed(httptest.NewRequest(http.MethodPost, "/api/admin/make-admin", body())))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSecurityStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SecurityStatus(gomock.Any(), 1).Return(&domain.SecurityStatus{
		IsAdmin:             true,
		PendingOlderThanDay: 3,
		FailedTransactions:  1,
	}, nil)
	w := httptest.NewRecorder()
	handler.SecurityStatus(w, authed(httptest.NewRequest(http.MethodGet, "/api/security/status", nil)))
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.SecurityStatusResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.IsAdmin)
	assert.Equal(t, 3, body.PendingOlderThanDay)
	assert.Equal(t, 1, body.FailedTransactions)
}

func TestRateLimitStatusHandler(t *testing.T) {
	handler, _ := NewMock(t)

	w := httptest.NewRecorder()
	r := authed(httptest.NewRequest(http.MethodGet, "/api/security/rate-limit", nil))
	r.RemoteAddr = "192.0.2.1:1234"
	handler.RateLimitStatus(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.RateLimitStatusResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.True(t, body.Allowed)
	assert.Greater(t, body.Tokens, 0.0)
}
