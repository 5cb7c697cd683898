package models

import (
	"strings"
	"time"

	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Kind is the direction of a transaction.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Uncategorized is the sentinel category for records that arrive without one.
const Uncategorized = "Sin categoría"

// Transaction represents a single income or expense entry of a user.
//
// Transactions are immutable after creation: the only lifecycle operation
// besides creating one is deleting it.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	User     User            `json:"-"`
	Date     time.Time       `json:"date"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Kind     Kind            `json:"kind"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`

	// ClientCreatedAt is the submission timestamp the client recorded,
	// in epoch milliseconds. Optional.
	ClientCreatedAt int64 `json:"createdAt,omitempty"`
}

// BeforeSave normalizes and validates the transaction.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = Uncategorized
	}
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		return ErrDateNotSet
	}
	t.Date = t.Date.In(time.UTC)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Kind != KindExpense && t.Kind != KindIncome {
		return ErrKindInvalid
	}

	return nil
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// TransactionsForUser returns all transactions of the user, ordered by
// date descending and client timestamp descending, matching the order
// of the transaction feed.
func TransactionsForUser(userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction
	err := DB.
		Where(&Transaction{UserID: userID}).
		Order("date DESC, client_created_at DESC").
		Find(&transactions).
		Error

	return transactions, err
}

// TransactionsForMonth returns the user's transactions scoped to a month,
// in the same order as TransactionsForUser.
func TransactionsForMonth(userID uuid.UUID, month types.Month) ([]Transaction, error) {
	var transactions []Transaction
	err := DB.
		Where(&Transaction{UserID: userID}).
		Where("date >= ? AND date < ?", month.FirstDay(), month.Next().FirstDay()).
		Order("date DESC, client_created_at DESC").
		Find(&transactions).
		Error

	return transactions, err
}
