package billing

import (
	"errors"
	"strconv"
	"strings"

	"moniepaddy/internal/models"
)

const FeeTypeFixed = "FIXED"

// Client errors
var (
	ErrProviderUnavailable = errors.New("billing provider unavailable")
	ErrPurchaseFailed      = errors.New("purchase failed at provider")
	ErrUnknownNetwork      = errors.New("unknown network")
	ErrPlanNotFound        = errors.New("data plan not found")
)

// PurchaseResult is the provider's answer to an executed purchase.
type PurchaseResult struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// ResolvedPlan is a catalog plan with its fee parsed to whole major units.
type ResolvedPlan struct {
	ID       string
	FeeMajor int64
	Meta     models.PlanMeta
}

type purchaseMeta struct {
	PhoneNumber string `json:"phone_number"`
}

type purchasePayload struct {
	Amount     int64        `json:"amount,omitempty"`
	OperatorID string       `json:"operator_id"`
	ProductID  string       `json:"product_id,omitempty"`
	BillType   string       `json:"bill_type"`
	Meta       purchaseMeta `json:"meta"`
}

// truncateFee cuts a fee string at the decimal point. Fixed-fee plans carry
// fees like "500.00"; the catalog response exposes "500".
func truncateFee(fee string) string {
	if i := strings.IndexByte(fee, '.'); i >= 0 {
		return fee[:i]
	}
	return fee
}

func parseFee(fee string) (int64, error) {
	return strconv.ParseInt(truncateFee(fee), 10, 64)
}
