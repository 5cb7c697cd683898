package v1

import (
	"net/http"

	"github.com/I4AN/MagnetWallet/internal/feed"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/report"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetMonth)
}

// Month is the full derived view of one month: the transaction aggregates,
// the budget reconciliation and the salary.
type Month struct {
	report.Summary
	Budgets []report.BudgetRow  `json:"budgets"`
	Salary  feed.SalarySnapshot `json:"salary"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

// GetMonth recomputes everything the month view needs from the current
// state: totals, category breakdown, daily series, budget reconciliation
// and salary.
func GetMonth(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	transactions, err := models.TransactionsForMonth(user.ID, month)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, MonthResponse{Error: &s})
		return
	}

	budgets, err := models.BudgetsFor(user.ID, month)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, MonthResponse{Error: &s})
		return
	}

	amount, configured, err := models.SalaryFor(user.ID, month)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, MonthResponse{Error: &s})
		return
	}

	summary := report.NewSummary(transactions, month)

	c.JSON(http.StatusOK, MonthResponse{Data: &Month{
		Summary: summary,
		Budgets: report.Reconcile(budgets, summary.ByCategory),
		Salary:  feed.SalarySnapshot{Amount: amount, Configured: configured},
	}})
}
