package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	Name           string `json:"name"`
	PhoneNumber    string `gorm:"uniqueIndex" json:"phoneNumber"`
	TransactionPin string `json:"-"` // bcrypt hash, empty until the user sets one
	// Balance is advisory only. The ledger fold is the source of truth and is
	// recomputed before every authorization decision.
	Balance int64 `gorm:"default:0" json:"balance"`
}
