package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/I4AN/MagnetWallet/internal/controllers/v1"
	"github.com/I4AN/MagnetWallet/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// createTestTransaction creates a transaction via the API.
func (suite *TestSuiteStandard) createTestTransaction(headers map[string]string, editable v1.TransactionEditable) v1.TransactionResponse {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", editable, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestTransactionsUnauthorized() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &r)
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	headers := suite.signUp()

	response := suite.createTestTransaction(headers, v1.TransactionEditable{
		Date:     "2024-03-05",
		Amount:   decimal.NewFromFloat(17.23),
		Kind:     "expense",
		Category: "Supermercado",
		Note:     "Weekly shopping",
	})

	suite.Require().NotNil(response.Data)
	assertEqualDecimal(suite.T(), decimal.NewFromFloat(17.23), response.Data.Amount)
	suite.Assert().Equal("Supermercado", response.Data.Category)
	suite.Assert().NotZero(response.Data.ClientCreatedAt, "the submission time must default to the server clock")
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	headers := suite.signUp()

	tests := []struct {
		name     string
		editable v1.TransactionEditable
	}{
		{"no date", v1.TransactionEditable{Amount: decimal.NewFromInt(10), Kind: "expense", Category: "Cafe"}},
		{"unparseable date", v1.TransactionEditable{Date: "05.03.2024", Amount: decimal.NewFromInt(10), Kind: "expense", Category: "Cafe"}},
		{"empty category", v1.TransactionEditable{Date: "2024-03-05", Amount: decimal.NewFromInt(10), Kind: "expense", Category: "   "}},
		{"zero amount", v1.TransactionEditable{Date: "2024-03-05", Kind: "expense", Category: "Cafe"}},
		{"negative amount", v1.TransactionEditable{Date: "2024-03-05", Amount: decimal.NewFromInt(-10), Kind: "expense", Category: "Cafe"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/v1/transactions", tt.editable, headers)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}

	// None of the rejected payloads may have been written
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsGetMonthScoped() {
	headers := suite.signUp()

	suite.createTestTransaction(headers, v1.TransactionEditable{Date: "2024-03-05", Amount: decimal.NewFromInt(10), Kind: "expense", Category: "Cafe"})
	suite.createTestTransaction(headers, v1.TransactionEditable{Date: "2024-03-20", Amount: decimal.NewFromInt(20), Kind: "expense", Category: "Cafe"})
	suite.createTestTransaction(headers, v1.TransactionEditable{Date: "2024-04-01", Amount: decimal.NewFromInt(30), Kind: "expense", Category: "Cafe"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?month=2024-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	// Newest first
	suite.Assert().Equal(20, response.Data[0].Date.Day())
	suite.Assert().Equal(5, response.Data[1].Date.Day())
}

func (suite *TestSuiteStandard) TestTransactionsGetMonthInvalid() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions?month=March", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	headers := suite.signUp()

	created := suite.createTestTransaction(headers, v1.TransactionEditable{Date: "2024-03-05", Amount: decimal.NewFromInt(10), Kind: "expense", Category: "Cafe"})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", created.Data.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/transactions", nil, headers)
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionDeleteNonexistent() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", uuid.New()), nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

// Users must not be able to delete each other's transactions.
func (suite *TestSuiteStandard) TestTransactionDeleteForeign() {
	owner := suite.signUp("owner@example.com")
	other := suite.signUp("other@example.com")

	created := suite.createTestTransaction(owner, v1.TransactionEditable{Date: "2024-03-05", Amount: decimal.NewFromInt(10), Kind: "expense", Category: "Cafe"})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", created.Data.ID), nil, other)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/transactions", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

func assertEqualDecimal(t *testing.T, expected, actual decimal.Decimal) {
	if !expected.Equal(actual) {
		t.Errorf("decimal values are not equal: expected %s, got %s", expected, actual)
	}
}
