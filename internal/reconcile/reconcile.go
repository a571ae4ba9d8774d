package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/greenriot/greenriot/internal/config"
	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/metrics"
	"github.com/greenriot/greenriot/internal/stripe"
)

const (
	// transactions younger than this are left for the webhook to settle
	minPendingAge = 10 * time.Minute

	batchLimit = 100
)

var inFlight sync.Map

type TransactionRepo interface {
	FindStalePendingDeposits(ctx context.Context, cutoff time.Time, limit int) ([]domain.Transaction, error)
}
type WalletRepo interface {
	SettleBySessionID(ctx context.Context, sessionID string) (*domain.Transaction, error)
}
type Processor interface {
	GetCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error)
}

// Service is the safety net behind the webhook: it periodically asks the
// processor about pending checkouts that never got a delivery and settles the
// ones that were actually paid.
type Service struct {
	transactionRepo TransactionRepo
	walletRepo      WalletRepo
	processor       Processor
	workerPool      WorkerPoolI
	interval        time.Duration
}

func New(cfg *config.Config, transactionRepo TransactionRepo, walletRepo WalletRepo, processor Processor) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		processor:       processor,
		workerPool:      NewWorkerPool(cfg.ReconcileWorkers),
		interval:        cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconcile service started", zap.Duration("interval", s.interval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconcile service")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	cutoff := time.Now().Add(-minPendingAge)
	pending, err := s.transactionRepo.FindStalePendingDeposits(ctx, cutoff, batchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch stale pending transactions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, txn := range pending {
		txn := txn

		if _, loaded := inFlight.LoadOrStore(txn.SessionID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.Submit(ctx, func() error {
				defer inFlight.Delete(txn.SessionID)
				return s.handleTransaction(ctx, txn)
			})
			if err != nil {
				inFlight.Delete(txn.SessionID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling transactions", zap.Error(err))
	}
}

func (s *Service) handleTransaction(ctx context.Context, txn domain.Transaction) error {
	session, err := s.processor.GetCheckoutSession(ctx, txn.SessionID)
	if err != nil {
		return fmt.Errorf("failed to fetch checkout session %s: %w", txn.SessionID, err)
	}

	if session.ID != txn.SessionID {
		return fmt.Errorf("session id mismatch: expected %s, got %s", txn.SessionID, session.ID)
	}
	if session.PaymentStatus != "paid" {
		zap.L().Debug("Checkout still unpaid", zap.String("session_id", txn.SessionID))
		return nil
	}
	if stripe.ToCents(txn.Amount) != session.AmountTotal {
		zap.L().Warn("Paid session amount disagrees with ledger, skipping",
			zap.String("session_id", session.ID),
			zap.Int64("session_cents", session.AmountTotal),
			zap.String("ledger_amount", txn.Amount.String()),
		)
		return nil
	}

	settled, err := s.walletRepo.SettleBySessionID(ctx, txn.SessionID)
	if err != nil {
		return fmt.Errorf("failed to settle session %s: %w", txn.SessionID, err)
	}
	if settled != nil {
		metrics.SettlementsTotal.WithLabelValues("reconciler").Inc()
		zap.L().Info("Settled stale pending transaction",
			zap.String("session_id", txn.SessionID),
			zap.Int("transaction_id", settled.ID),
		)
	}
	return nil
}
