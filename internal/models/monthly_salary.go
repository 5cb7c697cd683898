package models

import (
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonthlySalary is the configured income of a user for one month.
//
// The absence of a record is a valid state distinct from a zero amount:
// it means the salary has not been configured for that month.
type MonthlySalary struct {
	Timestamps
	UserID uuid.UUID       `json:"userId" gorm:"primaryKey"`
	User   User            `json:"-"`
	Month  types.Month     `json:"month" gorm:"primaryKey"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

func (s *MonthlySalary) BeforeSave(_ *gorm.DB) error {
	if s.Amount.IsNegative() {
		return ErrSalaryNegative
	}

	return nil
}

// SetSalary configures the salary for (user, month), overwriting any
// previous value. Zero is valid and means explicitly configured "no income".
func SetSalary(userID uuid.UUID, month types.Month, amount decimal.Decimal) error {
	salary := MonthlySalary{
		UserID: userID,
		Month:  month,
		Amount: amount,
	}

	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&salary).Error
}

// SalaryFor returns the configured salary for (user, month). The second
// return value reports whether a salary is configured at all.
func SalaryFor(userID uuid.UUID, month types.Month) (decimal.Decimal, bool, error) {
	var salary MonthlySalary
	err := DB.
		Where(&MonthlySalary{UserID: userID}).
		Where("month = ?", month).
		First(&salary).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	return salary.Amount, true, nil
}
