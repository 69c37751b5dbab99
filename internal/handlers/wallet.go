package handlers

import (
	"errors"
	"log"

	apperrors "moniepaddy/internal/errors"
	"moniepaddy/internal/repositories"
	"moniepaddy/internal/services/payment"
	"moniepaddy/internal/services/transaction"
	"moniepaddy/internal/services/wallet"
	"moniepaddy/internal/utils/response"
	"moniepaddy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// WalletHandler exposes the balance and funding endpoints.
type WalletHandler struct {
	wallet  wallet.Service
	service transaction.Service
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc wallet.Service, txSvc transaction.Service) *WalletHandler {
	return &WalletHandler{wallet: walletSvc, service: txSvc}
}

// GetBalance handles GET /api/balance. The balance is derived from the
// ledger on every call, never read from the advisory field.
func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorised")
	}

	balance, err := h.wallet.CalculateBalance(c.Context(), userID)
	if err != nil {
		log.Printf("Error calculating balance: %v", err)
		return response.ServerError(c, "Error calculating balance")
	}
	return response.Success(c, "User balance", balance)
}

// FundWallet handles POST /api/fund. The provider verification is awaited
// and exactly one response is written on every path.
func (h *WalletHandler) FundWallet(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorised")
	}

	var req validation.FundRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, "Bad request", apperrors.ErrValidation)
	}

	amount, err := h.service.FundWallet(c.Context(), userID, &req)
	if err != nil {
		return fundError(c, err)
	}
	return response.Success(c, "Success", amount)
}

func fundError(c *fiber.Ctx, err error) error {
	var ve *transaction.ValidationError
	switch {
	case errors.As(err, &ve):
		return response.BadRequest(c, "Bad request", ve.Error())
	case errors.Is(err, repositories.ErrUserNotFound):
		return response.Domain(c, fiber.StatusNotFound, "Cannot process transaction", apperrors.ErrUserNotFound)
	case errors.Is(err, transaction.ErrDuplicateReference):
		return response.Domain(c, fiber.StatusConflict, "Stale transaction", apperrors.ErrDuplicateReference)
	case errors.Is(err, payment.ErrVerificationFailed):
		return response.Error(c, fiber.StatusInternalServerError, "Transaction failed", "Could not confirm transaction")
	default:
		log.Printf("Funding error: %v", err)
		return response.ServerError(c, "Internal server error")
	}
}
