package v1

import (
	"errors"
	"net/http"

	"github.com/I4AN/MagnetWallet/internal/feed"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterSalaryRoutes registers the routes for the monthly salary with
// the RouterGroup that is passed.
func RegisterSalaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSalary)
		r.GET("", GetSalary)
		r.PUT("", SetSalary)
	}

	{
		r.OPTIONS("/stream", httputil.OptionsGet)
		r.GET("/stream", StreamSalary)
	}
}

var errSalaryNegative = errors.New("the salary must be zero or larger")

// SalaryEditable represents all user configurable parameters
type SalaryEditable struct {
	Amount decimal.Decimal `json:"amount" example:"2500"` // Salary for the month, zero or larger
}

type SalaryResponse struct {
	Data  *feed.SalarySnapshot `json:"data"`  // The salary for the month
	Error *string              `json:"error"` // The error, if any occurred
}

func OptionsSalary(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// GetSalary returns the salary for the month. The configured flag tells an
// unset salary apart from an explicit zero.
func GetSalary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SalaryResponse{Error: &s})
		return
	}

	amount, configured, err := models.SalaryFor(user.ID, month)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SalaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SalaryResponse{Data: &feed.SalarySnapshot{Amount: amount, Configured: configured}})
}

// SetSalary overwrites the salary for the month. Each month holds exactly
// one value, repeated saves replace it.
func SetSalary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SalaryResponse{Error: &s})
		return
	}

	var editable SalaryEditable
	if !bind(c, &editable) {
		return
	}

	if editable.Amount.IsNegative() {
		s := errSalaryNegative.Error()
		c.JSON(http.StatusBadRequest, SalaryResponse{Error: &s})
		return
	}

	if err := models.SetSalary(user.ID, month, editable.Amount); err != nil {
		s := err.Error()
		c.JSON(status(err), SalaryResponse{Error: &s})
		return
	}

	if err := feed.PublishSalary(user.ID, month); err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SalaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SalaryResponse{Data: &feed.SalarySnapshot{Amount: editable.Amount, Configured: true}})
}

// StreamSalary delivers salary snapshots for the month as server-sent events.
func StreamSalary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	sub, err := feed.SubscribeSalary(user.ID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	streamSnapshots(c, sub)
}
