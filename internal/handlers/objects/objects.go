package objects

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/objectservice"
	"github.com/greenriot/greenriot/pkg/utils"
)

type Service interface {
	ListByType(ctx context.Context, objectType string) ([]domain.StreetObject, error)
}

type ObjectHandler struct {
	objectService Service
}

func New(objectService Service) *ObjectHandler {
	return &ObjectHandler{
		objectService: objectService,
	}
}

// List godoc
//
//	@Summary		List street objects
//	@Description	List unsold objects of one type, newest first. Coordinates are excluded; they are only revealed by a paid unlock.
//	@Tags			Objects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	path		string					true	"Object type"	Enums(abandoned, donation, product)
//	@Success		200		{array}		dto.ObjectResponseDTO	"Listings"
//	@Failure		400		{object}	utils.Response			"Unknown object type"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/objects/{type} [get]
func (h *ObjectHandler) List(w http.ResponseWriter, r *http.Request) {
	objectType := chi.URLParam(r, "type")

	objects, err := h.objectService.ListByType(r.Context(), objectType)
	if err != nil {
		if errors.Is(err, objectservice.ErrUnknownObjectType) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ObjectResponseDTO, len(objects))
	for i, object := range objects {
		response[i] = dto.ObjectResponseDTO{
			ID:           object.ID,
			ObjectType:   object.ObjectType,
			Title:        object.Title,
			Description:  object.Description,
			ImageURL:     object.ImageURL,
			PriceCredits: object.PriceCredits,
			CreatedAt:    object.CreatedAt,
			DisplayName:  object.PosterDisplayName,
			Username:     object.PosterUsername,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
