package repositories

import (
	"strings"

	"moniepaddy/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository provides access to the transaction ledger. Entries
// are append-only; there is deliberately no update or delete.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	ListByUser(userID uint) ([]models.Transaction, error)
	FindByReference(reference string) (*models.Transaction, error)
	Search(userID uint, search, filter string) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *transactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.db.Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}

func (r *transactionRepository) FindByReference(reference string) (*models.Transaction, error) {
	var tx models.Transaction
	result := r.db.Where("reference = ?", reference).First(&tx)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &tx, nil
}

// searchColumns are the fields matched by the free-text search.
var searchColumns = []string{
	"type", "account_name", "account_number", "bank_name",
	"phone_number", "network", "data_plan", "note",
}

// Search returns the user's ledger entries matching an optional
// case-insensitive substring search and a filter discriminator. The user
// scope is not overridable by any filter value.
func (r *transactionRepository) Search(userID uint, search, filter string) ([]models.Transaction, error) {
	query := r.db.Where("user_id = ?", userID)

	if search != "" {
		var or []string
		var args []interface{}
		for _, col := range searchColumns {
			or = append(or, col+" ILIKE ?")
			args = append(args, "%"+search+"%")
		}
		query = query.Where(strings.Join(or, " OR "), args...)
	}

	switch filter {
	case models.StatusSuccessful, models.StatusFailed:
		query = query.Where("status = ?", filter)
	case "true":
		query = query.Where("credit = ?", true)
	case "false":
		query = query.Where("credit = ?", false)
	}

	var txs []models.Transaction
	if err := query.Order("created_at DESC").Find(&txs).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return txs, nil
}
