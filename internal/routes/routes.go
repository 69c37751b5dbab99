// Package routes defines the API routing configuration. It wires
// repositories into services and services into handlers, and applies the
// auth middleware to every wallet route.
package routes

import (
	"moniepaddy/internal/config"
	"moniepaddy/internal/handlers"
	"moniepaddy/internal/middleware"
	"moniepaddy/internal/repositories"
	"moniepaddy/internal/services/billing"
	"moniepaddy/internal/services/payment"
	"moniepaddy/internal/services/transaction"
	"moniepaddy/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.CacheService)
	txRepo := repositories.NewTransactionRepository(repositories.DB)

	walletService := wallet.NewService(userRepo, txRepo)
	billingClient := billing.NewClient(config.GetEnv("BLOCHQ_TOKEN", ""), config.GetEnv("BLOCHQ_BASE_URL", ""))
	paymentClient := payment.NewClient(config.GetEnv("PAYSTACK_SECRET", ""), config.GetEnv("PAYSTACK_BASE_URL", ""))

	txService := transaction.NewService(
		userRepo,
		txRepo,
		walletService,
		billingClient,
		paymentClient,
		transaction.Config{DryRun: config.GetBoolEnv("DRY_RUN", false)},
	)

	walletHandler := handlers.NewWalletHandler(walletService, txService)
	txHandler := handlers.NewTransactionHandler(txService)
	billingHandler := handlers.NewBillingHandler(billingClient)

	api := app.Group("/api")

	// Catalog reads are public.
	api.Get("/networks", billingHandler.GetNetworks)
	api.Get("/data-plans", billingHandler.GetDataPlans)

	// Everything else requires an authenticated user.
	protected := api.Use(middleware.Auth())
	protected.Get("/balance", walletHandler.GetBalance)
	protected.Post("/fund", walletHandler.FundWallet)
	protected.Post("/airtime", txHandler.BuyAirtime)
	protected.Post("/data", txHandler.BuyData)
	protected.Post("/transfer", txHandler.BankTransfer)
	protected.Get("/transactions", txHandler.GetTransactions)
}
