package transaction

import (
	"context"

	"moniepaddy/internal/models"
	"moniepaddy/internal/validation"
)

// Config holds orchestrator configuration.
type Config struct {
	// DryRun short-circuits purchases after the funds-sufficient gate,
	// writing a placeholder ledger entry without calling the billing
	// provider. Driven by the DRY_RUN environment switch.
	DryRun bool
}

// Service sequences guard, balance check, external call, and ledger write
// per operation type.
type Service interface {
	BuyAirtime(ctx context.Context, userID uint, req *validation.AirtimeRequest) (*models.Transaction, error)
	BuyData(ctx context.Context, userID uint, req *validation.DataRequest) (*models.Transaction, error)
	BankTransfer(ctx context.Context, userID uint, req *validation.TransferRequest) (*models.Transaction, error)
	FundWallet(ctx context.Context, userID uint, req *validation.FundRequest) (int64, error)
	History(ctx context.Context, userID uint, search, filter string) ([]models.Transaction, error)
}
