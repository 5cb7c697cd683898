package models

import (
	"strings"

	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetCategory is a per-month spending target for one category.
//
// There is at most one budget per (user, month, normalized category name).
// Saving an existing combination overwrites the previous record.
type BudgetCategory struct {
	DefaultModel
	UserID         uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_month_name"`
	User           User            `json:"-"`
	Month          types.Month     `json:"month" gorm:"uniqueIndex:budget_user_month_name"`
	Name           string          `json:"name"`
	NormalizedName string          `json:"-" gorm:"uniqueIndex:budget_user_month_name"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

// NormalizeCategoryName returns the canonical identity of a category name:
// case- and surrounding-whitespace-insensitive.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (b *BudgetCategory) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.NormalizedName = NormalizeCategoryName(b.Name)

	if b.NormalizedName == "" {
		return ErrBudgetNameEmpty
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// UpsertBudgetCategory creates the budget for (user, month, normalized name)
// or overwrites the stored name and amount if it already exists. Repeated
// upserts for the same normalized name never create a duplicate.
func UpsertBudgetCategory(userID uuid.UUID, month types.Month, name string, amount decimal.Decimal) (BudgetCategory, error) {
	budget := BudgetCategory{
		UserID: userID,
		Month:  month,
		Name:   strings.TrimSpace(name),
		Amount: amount,
	}

	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "normalized_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return BudgetCategory{}, err
	}

	// Re-read so that callers get the surviving row, not the candidate
	var saved BudgetCategory
	err = DB.
		Where(&BudgetCategory{UserID: userID, NormalizedName: NormalizeCategoryName(name)}).
		Where("month = ?", month).
		First(&saved).
		Error

	return saved, err
}

// BudgetsFor returns all budget categories of the user for the month,
// ordered by name.
func BudgetsFor(userID uuid.UUID, month types.Month) ([]BudgetCategory, error) {
	var budgets []BudgetCategory
	err := DB.
		Where(&BudgetCategory{UserID: userID}).
		Where("month = ?", month).
		Order("name ASC").
		Find(&budgets).
		Error

	return budgets, err
}
