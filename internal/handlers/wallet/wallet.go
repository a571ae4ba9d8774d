package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/stripe"
	"github.com/greenriot/greenriot/pkg/auth"
	"github.com/greenriot/greenriot/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int, currency string) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
	CreateDepositSession(ctx context.Context, userID int, amount decimal.Decimal, currency string) (*stripe.CheckoutSession, error)
	Withdraw(ctx context.Context, userID int, amount decimal.Decimal, currency string) (*domain.Wallet, *domain.Transaction, decimal.Decimal, error)
	WithdrawReal(ctx context.Context, userID int, amount decimal.Decimal, currency string) (*domain.Wallet, *stripe.Transfer, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Retrieve the wallet balance for the authenticated user in the requested currency. Missing wallets are created with a zero balance.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			currency	query		string					false	"Wallet currency"	default(USD)
//	@Success		200			{object}	dto.WalletResponseDTO	"Current balance"
//	@Failure		400			{object}	utils.Response			"Unsupported currency"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = domain.CurrencyUSD
	}
	wallet, err := h.walletService.GetBalance(r.Context(), userID, currency)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCurrency) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance:  wallet.Balance,
		Currency: wallet.Currency,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List the authenticated user's ledger entries, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, txn := range transactions {
		response[i] = dto.TransactionResponseDTO{
			ID:          txn.ID,
			Type:        txn.Type,
			Amount:      txn.Amount,
			Currency:    txn.Currency,
			Status:      txn.Status,
			Description: txn.Description,
			ObjectType:  txn.ObjectType,
			CreatedAt:   txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deposit godoc
//
//	@Summary		Start a wallet deposit
//	@Description	Open a hosted checkout session that credits the wallet once paid. The deposit stays pending until the webhook or a sync confirms payment.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositSessionRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositSessionResponseDTO	"Checkout session"
//	@Failure		400		{object}	utils.Response					"Validation failure"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.walletService.CreateDepositSession(r.Context(), userID, req.Amount, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAmountBelowMinimum), errors.Is(err, domain.ErrUnsupportedCurrency):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositSessionResponseDTO{
		URL:       session.URL,
		SessionID: session.ID,
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw credits
//	@Description	Debit the wallet balance. The wallet can never go negative; a concurrent spend that would overdraw is rejected.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawResponseDTO	"Withdrawal result"
//	@Failure		400		{object}	utils.Response			"Validation failure"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, txn, previous, err := h.walletService.Withdraw(r.Context(), userID, req.Amount, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrAmountBelowMinimum),
			errors.Is(err, domain.ErrUnsupportedCurrency),
			errors.Is(err, domain.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		Success:         true,
		TransactionID:   txn.ID,
		PreviousBalance: previous,
		NewBalance:      wallet.Balance,
	})
}

// WithdrawReal godoc
//
//	@Summary		Pay out to a connected account
//	@Description	Transfer real money from the wallet to the user's connected payout account and debit the wallet.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO		true	"Withdrawal request payload"
//	@Success		200		{object}	dto.RealWithdrawResponseDTO	"Payout result"
//	@Failure		400		{object}	utils.Response				"Validation failure or no payout account"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdraw-real [post]
func (h *WalletHandler) WithdrawReal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, transfer, err := h.walletService.WithdrawReal(r.Context(), userID, req.Amount, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrAmountBelowMinimum),
			errors.Is(err, domain.ErrUnsupportedCurrency),
			errors.Is(err, domain.ErrWalletNotFound),
			errors.Is(err, domain.ErrNoConnectedAccount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RealWithdrawResponseDTO{
		Success:    true,
		TransferID: transfer.ID,
		NewBalance: wallet.Balance,
		Currency:   wallet.Currency,
		Message:    "Withdrawal transferred to connected account",
	})
}
