package v1

import (
	"errors"
	"net/http"

	"github.com/I4AN/MagnetWallet/internal/auth"
	"github.com/I4AN/MagnetWallet/internal/httputil"
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrEmailInUse):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// URIID is the URI binding for routes addressing a single resource.
type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

var errMonthInvalid = errors.New("the month must be specified in YYYY-MM format")

// monthFromQuery returns the month the request addresses. When the query
// parameter is missing, the month containing "now" in the server's local
// time is used.
func monthFromQuery(c *gin.Context) (types.Month, error) {
	value := c.Query("month")
	if value == "" {
		return types.MonthOf(now()), nil
	}

	month, err := types.ParseMonth(value)
	if err != nil {
		return types.Month{}, errMonthInvalid
	}

	return month, nil
}

// currentUser returns the user the auth middleware stored. Handlers behind
// the middleware can rely on it being present.
func currentUser(c *gin.Context) (models.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpError{Error: auth.ErrMissingToken.Error()})
	}

	return user, ok
}

func bind(c *gin.Context, data any) bool {
	err := httputil.BindData(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return false
	}

	return true
}
