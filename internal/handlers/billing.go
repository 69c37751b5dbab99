package handlers

import (
	"errors"
	"log"

	"moniepaddy/internal/models"
	"moniepaddy/internal/services/billing"
	"moniepaddy/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// BillingHandler exposes the telco catalog endpoints. These are public
// read-through lookups; nothing is cached or persisted.
type BillingHandler struct {
	provider billing.Provider
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(p billing.Provider) *BillingHandler {
	return &BillingHandler{provider: p}
}

// GetNetworks handles GET /api/networks.
func (h *BillingHandler) GetNetworks(c *fiber.Ctx) error {
	operators, err := h.provider.Operators(c.Context())
	if err != nil {
		log.Printf("Operator catalog error: %v", err)
		return response.Error(c, fiber.StatusBadGateway, "Networks unavailable", "Could not fetch networks")
	}
	return response.Success(c, "Networks", operators)
}

type planReturn struct {
	ID   string          `json:"id"`
	Meta models.PlanMeta `json:"meta"`
}

// GetDataPlans handles GET /api/data-plans?network=.
func (h *BillingHandler) GetDataPlans(c *fiber.Ctx) error {
	network := c.Query("network")

	plans, err := h.provider.DataPlans(c.Context(), network)
	if err != nil {
		if errors.Is(err, billing.ErrUnknownNetwork) {
			return response.BadRequest(c, "Bad request", "Network id not provided")
		}
		log.Printf("Plan catalog error: %v", err)
		return response.Error(c, fiber.StatusBadGateway, "Data Plans unavailable", "Could not fetch data plans")
	}

	out := make([]planReturn, 0, len(plans))
	for _, plan := range plans {
		out = append(out, planReturn{ID: plan.ID, Meta: plan.Meta})
	}
	return response.Success(c, "Data Plans", out)
}
