package wallet

import (
	"context"
	"fmt"

	"moniepaddy/internal/models"
	"moniepaddy/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type service struct {
	users  repositories.UserRepository
	ledger repositories.TransactionRepository
	locks  *lockRegistry
}

// NewService creates a new wallet service.
func NewService(users repositories.UserRepository, ledger repositories.TransactionRepository) Service {
	if users == nil {
		panic("user repository is required")
	}
	if ledger == nil {
		panic("transaction repository is required")
	}

	return &service{
		users:  users,
		ledger: ledger,
		locks:  newLockRegistry(),
	}
}

// CalculateBalance folds the user's ledger into a signed minor-unit balance.
// Credit entries add, every other entry subtracts. Read-only; storage errors
// propagate to the caller.
func (s *service) CalculateBalance(ctx context.Context, userID uint) (int64, error) {
	txs, err := s.ledger.ListByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load ledger for user %d: %w", userID, err)
	}

	var balance int64
	for _, tx := range txs {
		if tx.Credit {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}
	return balance, nil
}

// RefreshBalance recomputes the derived balance and persists it to the
// advisory balance field. The returned value is the recomputed one, never the
// stored one.
func (s *service) RefreshBalance(ctx context.Context, user *models.User) (int64, error) {
	balance, err := s.CalculateBalance(ctx, user.ID)
	if err != nil {
		return 0, err
	}

	if err := s.users.UpdateBalance(user.ID, balance); err != nil {
		return 0, fmt.Errorf("failed to persist balance for user %d: %w", user.ID, err)
	}
	user.Balance = balance
	return balance, nil
}

// VerifyPIN checks a submitted transaction pin against the stored hash. A
// user with no stored pin is rejected on every pin-gated path. The verbatim
// comparison keeps legacy clients working that submit the already-hashed pin.
func (s *service) VerifyPIN(user *models.User, submitted string) error {
	if user.TransactionPin == "" {
		return ErrPinNotSet
	}
	if submitted == user.TransactionPin {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.TransactionPin), []byte(submitted)); err != nil {
		return ErrInvalidPin
	}
	return nil
}

// LockUser serializes spend operations for one user. Callers must hold the
// lock across recompute-balance, the sufficiency check, and the ledger write.
func (s *service) LockUser(userID uint) {
	s.locks.lock(userID)
}

// UnlockUser releases the user's spend lock.
func (s *service) UnlockUser(userID uint) {
	s.locks.unlock(userID)
}
