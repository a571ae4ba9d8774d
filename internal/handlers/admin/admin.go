package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/service/adminservice"
	"github.com/greenriot/greenriot/pkg/auth"
	"github.com/greenriot/greenriot/pkg/middleware"
	"github.com/greenriot/greenriot/pkg/utils"
)

type Service interface {
	MakeAdmin(ctx context.Context, callerID, targetID int) error
	SecurityStatus(ctx context.Context, userID int) (*domain.SecurityStatus, error)
}

type AdminHandler struct {
	adminService Service
	rateLimiter  *middleware.IPRateLimiter
}

func New(adminService Service, rateLimiter *middleware.IPRateLimiter) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		rateLimiter:  rateLimiter,
	}
}

// MakeAdmin godoc
//
//	@Summary		Grant the admin role to a user
//	@Description	Grant the admin role to the targeted user. Only an admin may grant it; granting an already held role changes nothing.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MakeAdminRequestDTO	true	"Grant request body"
//	@Success		200		{object}	utils.Response	"Role granted"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/make-admin [post]
func (h *AdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.MakeAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adminService.MakeAdmin(r.Context(), callerID, req.UserID); err != nil {
		if errors.Is(err, adminservice.ErrNotAdmin) {
			utils.RespondWithError(w, http.StatusForbidden, "Admin role required")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Admin role granted"})
}

// SecurityStatus godoc
//
//	@Summary		Security overview
//	@Description	Report the caller's role and the counts of aged pending and failed transactions.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SecurityStatusResponseDTO	"Security status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/security/status [get]
func (h *AdminHandler) SecurityStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.adminService.SecurityStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SecurityStatusResponseDTO{
		IsAdmin:             status.IsAdmin,
		PendingOlderThanDay: status.PendingOlderThanDay,
		FailedTransactions:  status.FailedTransactions,
	})
}

// RateLimitStatus godoc
//
//	@Summary		Rate limit status
//	@Description	Report whether the caller's IP currently has request budget left and how many tokens remain.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RateLimitStatusResponseDTO	"Rate limit status"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Router			/api/security/rate-limit [get]
func (h *AdminHandler) RateLimitStatus(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)
	tokens := h.rateLimiter.Tokens(ip)

	utils.RespondWithJSON(w, http.StatusOK, dto.RateLimitStatusResponseDTO{
		Allowed: tokens >= 1,
		Tokens:  tokens,
	})
}
