// Package report implements the month-scoped aggregation of transactions:
// totals, category breakdown, the dense daily series and the reconciliation
// of budgets against actual spending.
//
// All functions are pure transforms over their inputs. They never touch the
// database and are safe to call on every snapshot delivery. Malformed input
// rows are tolerated: a zero date matches no month, an empty category is
// counted under the Uncategorized sentinel.
package report

import (
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Totals are the overall sums for a set of transactions.
type Totals struct {
	Expenses decimal.Decimal `json:"expenses" example:"1337.42"` // Sum of all expense amounts
	Incomes  decimal.Decimal `json:"incomes" example:"2317.34"`  // Sum of all income amounts
	Net      decimal.Decimal `json:"net" example:"979.92"`       // Incomes minus expenses
}

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Name   string          `json:"name" example:"Supermercado"`
	Amount decimal.Decimal `json:"amount" example:"133.70"`
}

// DailyTotal is the summed expense amount for one calendar day of a month.
type DailyTotal struct {
	Day    int             `json:"day" example:"5"`
	Amount decimal.Decimal `json:"amount" example:"73.12"`
}

// FilterByMonth keeps exactly the transactions whose date falls in the month.
// The input order is preserved.
func FilterByMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if month.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// ComputeTotals sums expenses and incomes over the transactions.
// An empty input yields all-zero totals.
func ComputeTotals(transactions []models.Transaction) Totals {
	totals := Totals{
		Expenses: decimal.Zero,
		Incomes:  decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Kind {
		case models.KindExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		default:
			totals.Incomes = totals.Incomes.Add(t.Amount)
		}
	}

	totals.Net = totals.Incomes.Sub(totals.Expenses)
	return totals
}

// GroupByCategory sums expense amounts per distinct category name.
// Income transactions are ignored. Categories are matched by their exact
// name; records without one count as Uncategorized. The result is sorted
// by amount descending, ties broken by name ascending.
func GroupByCategory(transactions []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Kind != models.KindExpense {
			continue
		}

		name := t.Category
		if name == "" {
			name = models.Uncategorized
		}
		sums[name] = sums[name].Add(t.Amount)
	}

	grouped := make([]CategoryTotal, 0, len(sums))
	for name, amount := range sums {
		grouped = append(grouped, CategoryTotal{Name: name, Amount: amount})
	}

	slices.SortStableFunc(grouped, func(a, b CategoryTotal) int {
		if cmp := b.Amount.Cmp(a.Amount); cmp != 0 {
			return cmp
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	return grouped
}

// BuildDailySeries returns one entry per calendar day of the month, in
// ascending day order, each holding the sum of expense amounts dated on
// that day. Days without expenses are present with a zero amount.
func BuildDailySeries(transactions []models.Transaction, month types.Month) []DailyTotal {
	sums := make(map[int]decimal.Decimal)
	for _, t := range transactions {
		if t.Kind != models.KindExpense {
			continue
		}
		if !month.Contains(t.Date) {
			continue
		}
		day := t.Date.Day()
		sums[day] = sums[day].Add(t.Amount)
	}

	series := make([]DailyTotal, 0, month.Days())
	for day := 1; day <= month.Days(); day++ {
		amount, ok := sums[day]
		if !ok {
			amount = decimal.Zero
		}
		series = append(series, DailyTotal{Day: day, Amount: amount})
	}

	return series
}

// Summary bundles all derived aggregates for one month.
type Summary struct {
	Month      types.Month     `json:"month" example:"2024-03"`
	Totals     Totals          `json:"totals"`
	ByCategory []CategoryTotal `json:"byCategory"`
	Daily      []DailyTotal    `json:"daily"`
}

// NewSummary recomputes all month aggregates from the transaction set.
// Transactions outside the month are filtered out first.
func NewSummary(transactions []models.Transaction, month types.Month) Summary {
	monthTransactions := FilterByMonth(transactions, month)

	return Summary{
		Month:      month,
		Totals:     ComputeTotals(monthTransactions),
		ByCategory: GroupByCategory(monthTransactions),
		Daily:      BuildDailySeries(monthTransactions, month),
	}
}
