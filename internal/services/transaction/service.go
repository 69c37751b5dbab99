// Package transaction orchestrates the money-moving operations. Each
// operation is a linear pipeline of gates; any gate failure short-circuits
// before a ledger write, so no compensating action is ever needed.
package transaction

import (
	"context"
	"fmt"
	"log"

	"moniepaddy/internal/models"
	"moniepaddy/internal/repositories"
	"moniepaddy/internal/services/billing"
	"moniepaddy/internal/services/payment"
	"moniepaddy/internal/services/wallet"
	"moniepaddy/internal/utils/money"
	"moniepaddy/internal/validation"

	"github.com/google/uuid"
)

type service struct {
	users   repositories.UserRepository
	ledger  repositories.TransactionRepository
	wallet  wallet.Service
	billing billing.Provider
	payment payment.Provider
	cfg     Config
}

// NewService creates the transaction orchestrator.
func NewService(
	users repositories.UserRepository,
	ledger repositories.TransactionRepository,
	walletSvc wallet.Service,
	billingProvider billing.Provider,
	paymentProvider payment.Provider,
	cfg Config,
) Service {
	if users == nil {
		panic("user repository is required")
	}
	if ledger == nil {
		panic("transaction repository is required")
	}
	if walletSvc == nil {
		panic("wallet service is required")
	}
	if billingProvider == nil {
		panic("billing provider is required")
	}
	if paymentProvider == nil {
		panic("payment provider is required")
	}

	return &service{
		users:   users,
		ledger:  ledger,
		wallet:  walletSvc,
		billing: billingProvider,
		payment: paymentProvider,
		cfg:     cfg,
	}
}

// productOrder is the shared tail of the airtime and data pipelines.
type productOrder struct {
	txType      string
	amountMinor int64
	phoneNumber string
	network     string
	dataPlan    string
	pin         string
	execute     func(ctx context.Context) (*billing.PurchaseResult, error)
}

func (s *service) BuyAirtime(ctx context.Context, userID uint, req *validation.AirtimeRequest) (*models.Transaction, error) {
	v := validation.New()
	v.Airtime(req)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	amount := money.ToMinor(req.Amount)
	return s.buyProduct(ctx, user, productOrder{
		txType:      models.TransactionTypeAirtime,
		amountMinor: amount,
		phoneNumber: req.PhoneNumber,
		network:     req.Network,
		pin:         req.TransactionPin,
		execute: func(ctx context.Context) (*billing.PurchaseResult, error) {
			return s.billing.BuyAirtime(ctx, amount, req.PhoneNumber, req.Network)
		},
	})
}

func (s *service) BuyData(ctx context.Context, userID uint, req *validation.DataRequest) (*models.Transaction, error) {
	v := validation.New()
	v.Data(req)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	// Plan resolution happens before any balance or pin work; a lookup
	// failure aborts the pipeline here.
	plan, err := s.billing.FetchDataPlan(ctx, req.Network, req.DataPlanID)
	if err != nil {
		return nil, err
	}

	return s.buyProduct(ctx, user, productOrder{
		txType:      models.TransactionTypeData,
		amountMinor: money.ToMinor(plan.FeeMajor),
		phoneNumber: req.PhoneNumber,
		network:     req.Network,
		dataPlan:    plan.ID,
		pin:         req.TransactionPin,
		execute: func(ctx context.Context) (*billing.PurchaseResult, error) {
			return s.billing.BuyData(ctx, plan.ID, req.PhoneNumber, req.Network)
		},
	})
}

// buyProduct runs the spend pipeline shared by airtime and data purchases:
// refresh balance, verify pin, funds gate, provider call, ledger write. The
// user's spend lock is held across the whole sequence.
func (s *service) buyProduct(ctx context.Context, user *models.User, order productOrder) (*models.Transaction, error) {
	s.wallet.LockUser(user.ID)
	defer s.wallet.UnlockUser(user.ID)

	balance, err := s.wallet.RefreshBalance(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.wallet.VerifyPIN(user, order.pin); err != nil {
		return nil, err
	}

	if balance < order.amountMinor {
		return nil, ErrInsufficientFunds
	}

	entry := &models.Transaction{
		UserID:      user.ID,
		Amount:      order.amountMinor,
		Credit:      false,
		Type:        order.txType,
		PhoneNumber: order.phoneNumber,
		Network:     order.network,
		DataPlan:    order.dataPlan,
	}

	if s.cfg.DryRun {
		entry.Reference = "dry-" + uuid.NewString()
		entry.Status = models.StatusSuccessful
		return s.writeDebit(user, entry, balance)
	}

	result, err := order.execute(ctx)
	if err != nil {
		return nil, err
	}
	if result.Status != models.StatusSuccessful {
		// The provider attempt already happened; no debit is written.
		return nil, fmt.Errorf("%w: provider status %q", billing.ErrPurchaseFailed, result.Status)
	}

	entry.Reference = result.Reference
	entry.Status = result.Status
	return s.writeDebit(user, entry, balance)
}

func (s *service) writeDebit(user *models.User, entry *models.Transaction, balance int64) (*models.Transaction, error) {
	if err := s.ledger.Create(entry); err != nil {
		return nil, err
	}
	if err := s.users.UpdateBalance(user.ID, balance-entry.Amount); err != nil {
		// Advisory field only; the ledger already holds the truth.
		log.Printf("failed to update advisory balance for user %d: %v", user.ID, err)
	}
	return entry, nil
}

func (s *service) BankTransfer(ctx context.Context, userID uint, req *validation.TransferRequest) (*models.Transaction, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	v.BankTransfer(req)
	if !v.Valid() {
		return nil, &ValidationError{Fields: v.Errors}
	}

	// Fails closed on a missing stored pin before any balance work.
	if err := s.wallet.VerifyPIN(user, req.Pin); err != nil {
		return nil, err
	}

	amount := money.ToMinor(req.Amount)

	s.wallet.LockUser(user.ID)
	defer s.wallet.UnlockUser(user.ID)

	balance, err := s.wallet.RefreshBalance(ctx, user)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, ErrInsufficientFunds
	}

	// Transfers are recorded, not executed against a real rail.
	entry := &models.Transaction{
		UserID:        user.ID,
		Amount:        amount,
		Credit:        false,
		Type:          models.TransactionTypeTransfer,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		Note:          req.Note,
	}
	return s.writeDebit(user, entry, balance)
}

func (s *service) FundWallet(ctx context.Context, userID uint, req *validation.FundRequest) (int64, error) {
	v := validation.New()
	v.Fund(req)
	if !v.Valid() {
		return 0, &ValidationError{Fields: v.Errors}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return 0, err
	}

	// Stale-transaction guard: one credit per provider reference.
	if _, err := s.ledger.FindByReference(req.Reference); err == nil {
		return 0, ErrDuplicateReference
	} else if err != repositories.ErrTransactionNotFound {
		return 0, err
	}

	// The verify call is awaited; exactly one response per request.
	result, err := s.payment.VerifyTransaction(ctx, req.Reference)
	if err != nil {
		log.Printf("failed to fund wallet of %s: %v", user.Email, err)
		return 0, err
	}

	// The provider reports the amount in minor units already.
	entry := &models.Transaction{
		UserID:      user.ID,
		Amount:      result.Amount,
		Credit:      true,
		Type:        models.TransactionTypeFundWallet,
		Reference:   req.Reference,
		Status:      result.Status,
		BankName:    "Paystack",
		AccountName: "Monie-Paddy",
	}
	if err := s.ledger.Create(entry); err != nil {
		return 0, err
	}
	return result.Amount, nil
}

// History returns the user's ledger entries matching the optional search and
// filter. The user scope is never widened, whatever the filter value.
func (s *service) History(ctx context.Context, userID uint, search, filter string) ([]models.Transaction, error) {
	return s.ledger.Search(userID, search, filter)
}
