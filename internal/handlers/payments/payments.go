package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/walletservice"
	"github.com/greenriot/greenriot/internal/stripe"
	"github.com/greenriot/greenriot/pkg/auth"
	"github.com/greenriot/greenriot/pkg/utils"
)

// maxWebhookBody caps how much of a webhook payload is read before signature
// verification.
const maxWebhookBody = 1 << 16

type Service interface {
	PurchaseCoordinates(ctx context.Context, userID int, req walletservice.CoordinatePurchaseRequest) (*walletservice.CoordinatePurchase, error)
	Sync(ctx context.Context, userID int) (updated, total int, err error)
	HandleCheckoutCompleted(ctx context.Context, payload []byte, signatureHeader string) (*domain.Transaction, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// PurchaseCoordinates godoc
//
//	@Summary		Unlock object coordinates
//	@Description	Pay for an object's coordinates. A sufficient wallet balance is debited immediately and the coordinates are returned; otherwise a hosted checkout URL is returned and the purchase settles asynchronously.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CoordinateCheckoutRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.CoordinateCheckoutResponseDTO	"Coordinates or checkout session"
//	@Failure		400		{object}	utils.Response						"Validation failure"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		404		{object}	utils.Response						"Object not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/payments/coordinates [post]
func (h *PaymentHandler) PurchaseCoordinates(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CoordinateCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.paymentService.PurchaseCoordinates(r.Context(), userID, walletservice.CoordinatePurchaseRequest{
		ObjectID:    req.ObjectID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrObjectNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrUnsupportedCurrency),
			errors.Is(err, domain.ErrAmountBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if result.PaidWithCredits {
		utils.RespondWithJSON(w, http.StatusOK, dto.CoordinateCheckoutResponseDTO{
			Message: "Coordinates unlocked with credits",
			Coordinates: &dto.CoordinatesDTO{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CoordinateCheckoutResponseDTO{
		URL:       result.SessionURL,
		SessionID: result.SessionID,
		Message:   "Complete the checkout to unlock coordinates",
	})
}

// Sync godoc
//
//	@Summary		Reconcile pending deposits
//	@Description	Match the caller's pending deposits against the payment processor's recent checkout sessions and settle the ones that were paid.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SyncResponseDTO	"Reconciliation result"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/payments/sync [post]
func (h *PaymentHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	updated, total, err := h.paymentService.Sync(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if total == 0 {
		utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
			Message: "No pending transactions found",
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		Message: fmt.Sprintf("Updated %d of %d pending transactions", updated, total),
		Updated: updated,
		Total:   total,
	})
}

// Webhook godoc
//
//	@Summary		Payment processor webhook
//	@Description	Receive checkout completion events. The request signature is verified before any state changes; replayed events are acknowledged without effect.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.WebhookResponseDTO	"Event acknowledged"
//	@Failure		400	{object}	utils.Response			"Invalid signature or payload"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	signature := r.Header.Get("Stripe-Signature")

	_, err = h.paymentService.HandleCheckoutCompleted(r.Context(), payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, stripe.ErrInvalidSignature), errors.Is(err, stripe.ErrStaleTimestamp):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid signature")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
}
