package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")
)

// Transaction errors
var (
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")
	ErrDateNotSet        = errors.New("the date must be set")
	ErrKindInvalid       = errors.New("the transaction kind must be either 'expense' or 'income'")
)

// Budget errors
var (
	ErrBudgetNameEmpty = errors.New("the category name must not be empty")
)

// Salary errors
var (
	ErrSalaryNegative = errors.New("the salary must be zero or larger")
)

// User errors
var (
	ErrEmailEmpty   = errors.New("the email address must not be empty")
	ErrEmailInUse   = errors.New("this email address is already registered")
	ErrUserNotFound = errors.New("there is no user for the ID you specified")
)
