package feed

import (
	"fmt"
	"strings"

	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/report"
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The package-level hubs. All sessions of a process share them; every
// subscription is owned by the session that opened it.
var (
	transactionsHub = NewHub[[]models.Transaction]("transactions")
	budgetsHub      = NewHub[[]models.BudgetCategory]("budgets")
	salaryHub       = NewHub[SalarySnapshot]("salary")
)

// SalarySnapshot is the full-replacement delivery of the salary feed.
// Configured distinguishes "no salary set" from an explicit zero.
type SalarySnapshot struct {
	Amount     decimal.Decimal `json:"amount" example:"2500"`
	Configured bool            `json:"configured" example:"true"`
}

func transactionsTopic(userID uuid.UUID, month *types.Month) string {
	if month == nil {
		return fmt.Sprintf("transactions/%s", userID)
	}
	return fmt.Sprintf("transactions/%s/%s", userID, month)
}

// SubscribeTransactions opens a feed on the user's transactions, scoped to
// a month when one is given. The current set is delivered immediately.
func SubscribeTransactions(userID uuid.UUID, month *types.Month) (*Subscription[[]models.Transaction], error) {
	var transactions []models.Transaction
	var err error

	if month == nil {
		transactions, err = models.TransactionsForUser(userID)
	} else {
		transactions, err = models.TransactionsForMonth(userID, *month)
	}
	if err != nil {
		return nil, err
	}

	return transactionsHub.Subscribe(transactionsTopic(userID, month), transactions), nil
}

// PublishTransactions reloads the user's transactions and delivers a fresh
// snapshot to every open subscription, unscoped and month-scoped alike.
func PublishTransactions(userID uuid.UUID) error {
	transactions, err := models.TransactionsForUser(userID)
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("transactions/%s", userID)
	transactionsHub.PublishMatching(
		func(topic string) bool {
			return topic == prefix || strings.HasPrefix(topic, prefix+"/")
		},
		func(topic string) []models.Transaction {
			suffix, scoped := strings.CutPrefix(topic, prefix+"/")
			if !scoped {
				return transactions
			}

			month, err := types.ParseMonth(suffix)
			if err != nil {
				return transactions
			}
			return report.FilterByMonth(transactions, month)
		},
	)

	return nil
}

// SubscribeBudgets opens a feed on the user's budget categories for one month.
func SubscribeBudgets(userID uuid.UUID, month types.Month) (*Subscription[[]models.BudgetCategory], error) {
	budgets, err := models.BudgetsFor(userID, month)
	if err != nil {
		return nil, err
	}

	topic := fmt.Sprintf("budgets/%s/%s", userID, month)
	return budgetsHub.Subscribe(topic, budgets), nil
}

// PublishBudgets delivers a fresh budget snapshot for (user, month).
func PublishBudgets(userID uuid.UUID, month types.Month) error {
	budgets, err := models.BudgetsFor(userID, month)
	if err != nil {
		return err
	}

	budgetsHub.Publish(fmt.Sprintf("budgets/%s/%s", userID, month), budgets)
	return nil
}

// SubscribeSalary opens a feed on the user's salary for one month.
func SubscribeSalary(userID uuid.UUID, month types.Month) (*Subscription[SalarySnapshot], error) {
	snapshot, err := salarySnapshot(userID, month)
	if err != nil {
		return nil, err
	}

	topic := fmt.Sprintf("salary/%s/%s", userID, month)
	return salaryHub.Subscribe(topic, snapshot), nil
}

// PublishSalary delivers a fresh salary snapshot for (user, month).
func PublishSalary(userID uuid.UUID, month types.Month) error {
	snapshot, err := salarySnapshot(userID, month)
	if err != nil {
		return err
	}

	salaryHub.Publish(fmt.Sprintf("salary/%s/%s", userID, month), snapshot)
	return nil
}

func salarySnapshot(userID uuid.UUID, month types.Month) (SalarySnapshot, error) {
	amount, configured, err := models.SalaryFor(userID, month)
	if err != nil {
		return SalarySnapshot{}, err
	}

	return SalarySnapshot{Amount: amount, Configured: configured}, nil
}
