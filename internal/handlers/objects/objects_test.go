package objects

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/objectservice"
)

func NewMock(t *testing.T) (*ObjectHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func listRequest(objectType string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/objects/"+objectType, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("type", objectType)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Listings exclude coordinates", func(t *testing.T) {
		service.EXPECT().ListByType(gomock.Any(), domain.ObjectTypeAbandoned).Return([]domain.StreetObject{
			{
				ID:                7,
				ObjectType:        domain.ObjectTypeAbandoned,
				Title:             "Mid-century armchair",
				Latitude:          40.4168,
				Longitude:         -3.7038,
				PriceCredits:      decimal.NewFromInt(3),
				PosterDisplayName: "Street Finder",
				PosterUsername:    "streetfinder",
			},
		}, nil)

		w := httptest.NewRecorder()
		handler.List(w, listRequest(domain.ObjectTypeAbandoned))
		assert.Equal(t, http.StatusOK, w.Code)

		var raw []map[string]any
		_ = json.NewDecoder(w.Body).Decode(&raw)
		assert.Len(t, raw, 1)
		assert.NotContains(t, raw[0], "latitude")
		assert.NotContains(t, raw[0], "longitude")
		assert.Equal(t, "streetfinder", raw[0]["username"])
	})

	t.Run("Unknown type", func(t *testing.T) {
		service.EXPECT().ListByType(gomock.Any(), "treasure").Return(nil, objectservice.ErrUnknownObjectType)

		w := httptest.NewRecorder()
		handler.List(w, listRequest("treasure"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty listing returns an empty array", func(t *testing.T) {
		service.EXPECT().ListByType(gomock.Any(), domain.ObjectTypeDonation).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, listRequest(domain.ObjectTypeDonation))
		assert.Equal(t, http.StatusOK, w.Code)

		var body []dto.ObjectResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Empty(t, body)
	})
}
