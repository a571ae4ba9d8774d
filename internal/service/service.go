package service

import (
	"github.com/greenriot/greenriot/internal/config"
	"github.com/greenriot/greenriot/internal/handlers/accounts"
	"github.com/greenriot/greenriot/internal/handlers/admin"
	authhandlers "github.com/greenriot/greenriot/internal/handlers/auth"
	"github.com/greenriot/greenriot/internal/handlers/objects"
	"github.com/greenriot/greenriot/internal/handlers/payments"
	"github.com/greenriot/greenriot/internal/handlers/wallet"
	"github.com/greenriot/greenriot/internal/repo"
	"github.com/greenriot/greenriot/internal/service/adminservice"
	"github.com/greenriot/greenriot/internal/service/authservice"
	"github.com/greenriot/greenriot/internal/service/objectservice"
	"github.com/greenriot/greenriot/internal/service/walletservice"
	"github.com/greenriot/greenriot/internal/stripe"
	pkgauth "github.com/greenriot/greenriot/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	WalletService  wallet.Service
	PaymentService payments.Service
	ObjectService  objects.Service
	AccountService accounts.Service
	AdminService   admin.Service
}

func New(repo *repo.Repositories, processor *stripe.Client, cfg *config.Config) *Services {
	walletService := walletservice.New(
		repo.WalletRepo,
		repo.TransactionRepo,
		repo.AccountRepo,
		repo.UserRepo,
		repo.ObjectRepo,
		processor,
		cfg,
	)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	objectService := objectservice.New(repo.ObjectRepo)
	adminService := adminservice.New(repo.RoleRepo)

	return &Services{
		AuthService:    authService,
		WalletService:  walletService,
		PaymentService: walletService,
		ObjectService:  objectService,
		AccountService: walletService,
		AdminService:   adminService,
	}
}
