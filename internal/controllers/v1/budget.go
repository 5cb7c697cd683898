package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/I4AN/MagnetWallet/internal/feed"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budget categories with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", UpsertBudget)
	}

	{
		r.OPTIONS("/stream", httputil.OptionsGet)
		r.GET("/stream", StreamBudgets)
	}
}

var (
	errBudgetCategoryRequired = errors.New("the category name must not be empty")
	errBudgetAmountInvalid    = errors.New("the budget amount must be a number larger than zero")
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name   string          `json:"name" example:"Supermercado"` // Category name, upserts are keyed on its normalized form
	Amount decimal.Decimal `json:"amount" example:"300"`        // Target amount, must be larger than zero
}

type BudgetListResponse struct {
	Data  []models.BudgetCategory `json:"data"`  // List of budget categories
	Error *string                 `json:"error"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *models.BudgetCategory `json:"data"`  // Data for the budget category
	Error *string                `json:"error"` // The error, if any occurred
}

func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// GetBudgets returns the user's budget categories for the month, ordered
// by name.
func GetBudgets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	budgets, err := models.BudgetsFor(user.ID, month)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, BudgetListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// UpsertBudget creates or overwrites the budget for (month, category).
// Upserts are idempotent per normalized category name: repeated saves for
// the same name overwrite, they never duplicate.
func UpsertBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var editable BudgetEditable
	if !bind(c, &editable) {
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		s := errBudgetCategoryRequired.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	if !editable.Amount.IsPositive() {
		s := errBudgetAmountInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget, err := models.UpsertBudgetCategory(user.ID, month, editable.Name, editable.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	if err := feed.PublishBudgets(user.ID, month); err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// StreamBudgets delivers budget snapshots for the month as server-sent events.
func StreamBudgets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	sub, err := feed.SubscribeBudgets(user.ID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	streamSnapshots(c, sub)
}
