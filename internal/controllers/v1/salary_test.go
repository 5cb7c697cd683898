package v1_test

import (
	"net/http"

	v1 "github.com/I4AN/MagnetWallet/internal/controllers/v1"
	"github.com/I4AN/MagnetWallet/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSalaryUnconfigured() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/salary?month=2024-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SalaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().False(response.Data.Configured)
	assertEqualDecimal(suite.T(), decimal.Zero, response.Data.Amount)
}

func (suite *TestSuiteStandard) TestSalarySet() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/salary?month=2024-03", v1.SalaryEditable{Amount: decimal.NewFromInt(2500)}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	// Each month holds exactly one value, repeated saves replace it
	r = test.Request(suite.T(), suite.router, http.MethodPut, "/v1/salary?month=2024-03", v1.SalaryEditable{Amount: decimal.NewFromInt(2600)}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/salary?month=2024-03", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SalaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Configured)
	assertEqualDecimal(suite.T(), decimal.NewFromInt(2600), response.Data.Amount)
}

// An explicit zero salary is a configured value, not an unset one.
func (suite *TestSuiteStandard) TestSalaryZero() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/salary?month=2024-03", v1.SalaryEditable{Amount: decimal.Zero}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/salary?month=2024-03", nil, headers)

	var response v1.SalaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Configured)
	assertEqualDecimal(suite.T(), decimal.Zero, response.Data.Amount)
}

func (suite *TestSuiteStandard) TestSalaryNegative() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/salary?month=2024-03", v1.SalaryEditable{Amount: decimal.NewFromInt(-1)}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

// Salaries are scoped to their month.
func (suite *TestSuiteStandard) TestSalaryMonthScope() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/salary?month=2024-03", v1.SalaryEditable{Amount: decimal.NewFromInt(2500)}, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/salary?month=2024-04", nil, headers)

	var response v1.SalaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Configured)
}
