package repo

import (
	"github.com/greenriot/greenriot/internal/pg"
	accountrepo "github.com/greenriot/greenriot/internal/repo/account-repo"
	objectrepo "github.com/greenriot/greenriot/internal/repo/object-repo"
	rolerepo "github.com/greenriot/greenriot/internal/repo/role-repo"
	transactionrepo "github.com/greenriot/greenriot/internal/repo/transaction-repo"
	userrepo "github.com/greenriot/greenriot/internal/repo/user-repo"
	walletrepo "github.com/greenriot/greenriot/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	ObjectRepo      *objectrepo.Repository
	AccountRepo     *accountrepo.Repository
	RoleRepo        *rolerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		ObjectRepo:      objectrepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		RoleRepo:        rolerepo.New(conn),
	}
}
