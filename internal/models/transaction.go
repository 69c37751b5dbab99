package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeAirtime    = "airtime"
	TransactionTypeData       = "data"
	TransactionTypeTransfer   = "transfer"
	TransactionTypeFundWallet = "fund wallet"
)

// Provider-reported statuses
const (
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
)

// Transaction is one immutable ledger entry. Amounts are stored in minor
// units (kobo). Corrections are new offsetting entries, never mutations.
type Transaction struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	Amount int64  `gorm:"not null" json:"amount"`
	Credit bool   `gorm:"not null" json:"credit"`
	Type   string `gorm:"not null" json:"transactionType"`

	// Airtime / data purchases
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Network     string `json:"network,omitempty"`
	DataPlan    string `json:"dataPlan,omitempty"`

	// Bank transfers
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	Note          string `json:"note,omitempty"`

	// Provider-backed operations
	Reference string `gorm:"index" json:"reference,omitempty"`
	Status    string `json:"status,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
