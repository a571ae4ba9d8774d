package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/walletservice"
	"github.com/greenriot/greenriot/pkg/auth"
	"github.com/greenriot/greenriot/pkg/utils"
)

type Service interface {
	SetPayoutAccount(ctx context.Context, userID int, stripeAccountID, cardNumber string) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// SetPayoutAccount godoc
//
//	@Summary		Connect a payout account
//	@Description	Store the connected account that receives real withdrawals. A supplied card number must pass a Luhn check.
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutAccountRequestDTO		true	"Payout account payload"
//	@Success		200		{object}	dto.PayoutAccountResponseDTO	"Account stored"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		422		{object}	utils.Response					"Invalid card number"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/account/payout [post]
func (h *AccountHandler) SetPayoutAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PayoutAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.StripeAccountID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Account id is required")
		return
	}

	if err := h.accountService.SetPayoutAccount(r.Context(), userID, req.StripeAccountID, req.CardNumber); err != nil {
		if errors.Is(err, walletservice.ErrInvalidCardNumber) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutAccountResponseDTO{
		Message: "Payout account connected",
	})
}
