package wallet

import (
	"context"

	"moniepaddy/internal/models"
)

// Service owns balance derivation, pin authorization, and per-user spend
// serialization.
type Service interface {
	CalculateBalance(ctx context.Context, userID uint) (int64, error)
	RefreshBalance(ctx context.Context, user *models.User) (int64, error)
	VerifyPIN(user *models.User, submitted string) error
	LockUser(userID uint)
	UnlockUser(userID uint)
}
