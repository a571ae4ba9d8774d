package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/greenriot/greenriot/docs"
	"github.com/greenriot/greenriot/internal/handlers/accounts"
	"github.com/greenriot/greenriot/internal/handlers/admin"
	authhandlers "github.com/greenriot/greenriot/internal/handlers/auth"
	"github.com/greenriot/greenriot/internal/handlers/objects"
	"github.com/greenriot/greenriot/internal/handlers/payments"
	"github.com/greenriot/greenriot/internal/handlers/wallet"
	"github.com/greenriot/greenriot/internal/metrics"
	"github.com/greenriot/greenriot/internal/service"
	"github.com/greenriot/greenriot/pkg/auth"
	"github.com/greenriot/greenriot/pkg/middleware"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	WithdrawReal(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	PurchaseCoordinates(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type ObjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	SetPayoutAccount(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	MakeAdmin(w http.ResponseWriter, r *http.Request)
	SecurityStatus(w http.ResponseWriter, r *http.Request)
	RateLimitStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	PaymentHandler PaymentHandler
	ObjectHandler  ObjectHandler
	AccountHandler AccountHandler
	AdminHandler   AdminHandler

	rateLimiter *middleware.IPRateLimiter
	idempotency func(http.Handler) http.Handler
}

func New(s *service.Services, rateLimiter *middleware.IPRateLimiter, idempotencyStore middleware.IdempotencyStore) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallet.New(s.WalletService),
		PaymentHandler: payments.New(s.PaymentService),
		ObjectHandler:  objects.New(s.ObjectService),
		AccountHandler: accounts.New(s.AccountService),
		AdminHandler:   admin.New(s.AdminService, rateLimiter),
		rateLimiter:    rateLimiter,
		idempotency:    middleware.Idempotency(idempotencyStore),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		chimiddleware.Logger,
		middleware.CORS,
		metrics.Middleware,
		h.rateLimiter.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		// webhook authenticates by signature, not by bearer token
		r.Post("/payments/webhook", h.PaymentHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.With(h.idempotency).Post("/deposit", h.WalletHandler.Deposit)
				r.With(h.idempotency).Post("/withdraw", h.WalletHandler.Withdraw)
				r.With(h.idempotency).Post("/withdraw-real", h.WalletHandler.WithdrawReal)
			})
			r.Route("/payments", func(r chi.Router) {
				r.With(h.idempotency).Post("/coordinates", h.PaymentHandler.PurchaseCoordinates)
				r.Post("/sync", h.PaymentHandler.Sync)
			})
			r.Get("/objects/{type}", h.ObjectHandler.List)
			r.Post("/account/payout", h.AccountHandler.SetPayoutAccount)
			r.Route("/security", func(r chi.Router) {
				r.Get("/status", h.AdminHandler.SecurityStatus)
				r.Get("/rate-limit", h.AdminHandler.RateLimitStatus)
			})
			r.Post("/admin/make-admin", h.AdminHandler.MakeAdmin)
		})
	})

	return r
}
