package handlers

import (
	"errors"
	"log"

	apperrors "moniepaddy/internal/errors"
	"moniepaddy/internal/repositories"
	"moniepaddy/internal/services/billing"
	"moniepaddy/internal/services/transaction"
	"moniepaddy/internal/services/wallet"
	"moniepaddy/internal/utils/response"
	"moniepaddy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes the purchase, transfer, and history endpoints.
type TransactionHandler struct {
	service transaction.Service
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(s transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// BuyAirtime handles POST /api/airtime.
func (h *TransactionHandler) BuyAirtime(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorised")
	}

	var req validation.AirtimeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, "Bad request", apperrors.ErrValidation)
	}

	tx, err := h.service.BuyAirtime(c.Context(), userID, &req)
	if err != nil {
		return purchaseError(c, err)
	}
	return response.Success(c, "Purchase successful", tx)
}

// BuyData handles POST /api/data.
func (h *TransactionHandler) BuyData(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorised")
	}

	var req validation.DataRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, "Bad request", apperrors.ErrValidation)
	}

	tx, err := h.service.BuyData(c.Context(), userID, &req)
	if err != nil {
		return purchaseError(c, err)
	}
	return response.Success(c, "Purchase successful", tx)
}

// BankTransfer handles POST /api/transfer.
func (h *TransactionHandler) BankTransfer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorised")
	}

	var req validation.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Domain(c, fiber.StatusBadRequest, "Transaction failed", apperrors.ErrValidation)
	}

	tx, err := h.service.BankTransfer(c.Context(), userID, &req)
	if err != nil {
		return transferError(c, err)
	}
	return response.Success(c, "Transfer successful", tx)
}

// GetTransactions handles GET /api/transactions with optional search and
// filter query parameters. Results are always scoped to the caller.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorised")
	}

	txs, err := h.service.History(c.Context(), userID, c.Query("search"), c.Query("filter"))
	if err != nil {
		log.Printf("Transaction history error: %v", err)
		return response.ServerError(c, "Internal server error")
	}
	return response.Success(c, "Transactions", txs)
}

// purchaseError maps airtime/data pipeline failures to API responses.
func purchaseError(c *fiber.Ctx, err error) error {
	var ve *transaction.ValidationError
	switch {
	case errors.As(err, &ve):
		return response.BadRequest(c, "Bad request", ve.Error())
	case errors.Is(err, repositories.ErrUserNotFound):
		return response.Domain(c, fiber.StatusNotFound, "User not found", apperrors.ErrUserNotFound)
	case errors.Is(err, wallet.ErrPinNotSet), errors.Is(err, wallet.ErrInvalidPin):
		return response.Domain(c, fiber.StatusForbidden, "Invalid transaction pin", apperrors.ErrUnauthorized)
	case errors.Is(err, transaction.ErrInsufficientFunds):
		return response.Domain(c, fiber.StatusBadRequest, "purchase failed", apperrors.ErrInsufficientFunds)
	case errors.Is(err, billing.ErrUnknownNetwork):
		return response.BadRequest(c, "Bad request", "unknown network")
	case errors.Is(err, billing.ErrPlanNotFound), errors.Is(err, billing.ErrProviderUnavailable):
		return response.Domain(c, fiber.StatusBadGateway, "Error getting plan", apperrors.ErrUpstream)
	case errors.Is(err, billing.ErrPurchaseFailed):
		return response.Domain(c, fiber.StatusBadRequest, "purchase failed", apperrors.ErrUpstream)
	default:
		log.Printf("Purchase error: %v", err)
		return response.ServerError(c, "Internal server error")
	}
}

// transferError maps transfer pipeline failures to API responses. Transfers
// report insufficient funds as a conflict, unlike purchases.
func transferError(c *fiber.Ctx, err error) error {
	var ve *transaction.ValidationError
	switch {
	case errors.As(err, &ve):
		return response.BadRequest(c, "Transaction failed", ve.Error())
	case errors.Is(err, repositories.ErrUserNotFound):
		return response.Domain(c, fiber.StatusNotFound, "Cannot process transaction", apperrors.ErrUserNotFound)
	case errors.Is(err, wallet.ErrPinNotSet), errors.Is(err, wallet.ErrInvalidPin):
		return response.Domain(c, fiber.StatusForbidden, "Transaction failed", apperrors.ErrUnauthorized)
	case errors.Is(err, transaction.ErrInsufficientFunds):
		return response.Domain(c, fiber.StatusConflict, "Transaction failed", apperrors.ErrInsufficientFunds)
	default:
		log.Printf("Transfer error: %v", err)
		return response.ServerError(c, "Internal server error")
	}
}
