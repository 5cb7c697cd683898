package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/I4AN/MagnetWallet/internal/feed"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/stream", httputil.OptionsGet)
		r.GET("/stream", StreamTransactions)
	}

	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.DELETE("/:id", DeleteTransaction)
	}
}

var (
	errTransactionDateRequired     = errors.New("the date must be set and in YYYY-MM-DD format")
	errTransactionCategoryRequired = errors.New("the category must not be empty")
	errTransactionAmountInvalid    = errors.New("the amount must be a number larger than zero")
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date      string          `json:"date" example:"2024-03-05"`      // Calendar date in YYYY-MM-DD format
	Amount    decimal.Decimal `json:"amount" example:"17.23"`         // Amount, must be larger than zero
	Kind      models.Kind     `json:"kind" example:"expense"`         // "expense" or "income"
	Category  string          `json:"category" example:"Supermercado"`// Category name
	Note      string          `json:"note" example:"Weekly shopping"` // Optional note
	CreatedAt int64           `json:"createdAt" example:"1709640000000"` // Optional client submission time in epoch milliseconds
}

func (editable TransactionEditable) model(date time.Time) models.Transaction {
	return models.Transaction{
		Date:            date,
		Amount:          editable.Amount,
		Kind:            editable.Kind,
		Category:        editable.Category,
		Note:            editable.Note,
		ClientCreatedAt: editable.CreatedAt,
	}
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`  // List of transactions
	Error *string              `json:"error"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // Data for the transaction
	Error *string             `json:"error"` // The error, if any occurred
}

func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetTransactions returns the user's transactions, newest first. With a
// "month" query parameter the set is scoped to that month.
func GetTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var transactions []models.Transaction
	var err error

	if c.Query("month") != "" {
		var month types.Month
		month, err = monthFromQuery(c)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionListResponse{Error: &s})
			return
		}
		transactions, err = models.TransactionsForMonth(user.ID, month)
	} else {
		transactions, err = models.TransactionsForUser(user.ID)
	}

	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TransactionListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// CreateTransaction validates and stores a new transaction, then delivers
// a fresh snapshot to all open transaction feeds of the user.
func CreateTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var editable TransactionEditable
	if !bind(c, &editable) {
		return
	}

	err := validateTransaction(editable)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	date, _ := time.Parse("2006-01-02", editable.Date)

	transaction := editable.model(date)
	transaction.UserID = user.ID
	if transaction.ClientCreatedAt == 0 {
		transaction.ClientCreatedAt = now().UnixMilli()
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	if err := feed.PublishTransactions(user.ID); err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// validateTransaction checks the creation payload before anything is
// written: empty date, empty category or a non-positive amount surface a
// validation message and perform no write.
func validateTransaction(editable TransactionEditable) error {
	if editable.Date == "" {
		return errTransactionDateRequired
	}
	if _, err := time.Parse("2006-01-02", editable.Date); err != nil {
		return errTransactionDateRequired
	}

	if strings.TrimSpace(editable.Category) == "" {
		return errTransactionCategoryRequired
	}

	if !editable.Amount.IsPositive() {
		return errTransactionAmountInvalid
	}

	return nil
}

// DeleteTransaction permanently removes one of the user's transactions.
func DeleteTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, httpError{Error: s})
		return
	}

	var transaction models.Transaction
	err := models.DB.
		Where(&models.Transaction{UserID: user.ID}).
		First(&transaction, "id = ?", uri.ID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = models.ErrResourceNotFound
		}
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	if err := feed.PublishTransactions(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// StreamTransactions delivers transaction snapshots as server-sent events.
// With a "month" query parameter the snapshots are scoped to that month.
func StreamTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var month *types.Month
	if c.Query("month") != "" {
		parsed, err := monthFromQuery(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
		month = &parsed
	}

	sub, err := feed.SubscribeTransactions(user.ID, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	streamSnapshots(c, sub)
}
