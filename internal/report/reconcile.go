package report

import (
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BudgetRow is one row of the budget-vs-spend view for a month.
//
// Budget and Remaining are nil for categories that have spending but no
// configured budget. Such rows are never flagged as over budget.
type BudgetRow struct {
	Name      string           `json:"name" example:"Supermercado"`
	Budget    *decimal.Decimal `json:"budget" example:"300"`     // nil when no budget is configured
	Spent     decimal.Decimal  `json:"spent" example:"133.70"`   // Always present, zero when nothing was spent
	Remaining *decimal.Decimal `json:"remaining" example:"-150"` // Budget minus spent, nil when no budget is configured
	Over      bool             `json:"over" example:"true"`      // True iff a budget exists and remaining is negative
}

// Reconcile merges the configured budgets with the per-category spending
// into one row per category present in either input. Identity is the
// normalized category name; the display name prefers the budget's stored
// name. Rows are ordered by name with a Spanish collator, matching the
// taxonomy the categories come from.
func Reconcile(budgets []models.BudgetCategory, spent []CategoryTotal) []BudgetRow {
	type entry struct {
		name   string
		budget *decimal.Decimal
		spent  decimal.Decimal
	}

	entries := make(map[string]*entry, len(budgets)+len(spent))

	for _, b := range budgets {
		amount := b.Amount
		entries[models.NormalizeCategoryName(b.Name)] = &entry{
			name:   b.Name,
			budget: &amount,
		}
	}

	// Spent entries arrive keyed on their exact name, so two of them can
	// share a normalized identity. Their amounts accumulate.
	for _, s := range spent {
		key := models.NormalizeCategoryName(s.Name)
		if e, ok := entries[key]; ok {
			e.spent = e.spent.Add(s.Amount)
			continue
		}
		entries[key] = &entry{
			name:  s.Name,
			spent: s.Amount,
		}
	}

	rows := make([]BudgetRow, 0, len(entries))
	for _, e := range entries {
		row := BudgetRow{
			Name:  e.name,
			Spent: e.spent,
		}

		if e.budget != nil {
			remaining := e.budget.Sub(e.spent)
			row.Budget = e.budget
			row.Remaining = &remaining
			row.Over = remaining.IsNegative()
		}

		rows = append(rows, row)
	}

	collator := collate.New(language.Spanish)
	slices.SortStableFunc(rows, func(a, b BudgetRow) int {
		return collator.CompareString(a.Name, b.Name)
	})

	return rows
}
