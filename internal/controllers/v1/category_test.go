package v1_test

import (
	"net/http"

	v1 "github.com/I4AN/MagnetWallet/internal/controllers/v1"
	"github.com/I4AN/MagnetWallet/internal/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 16)
	suite.Assert().Equal("Vivienda", response.Data[0].Title)
	suite.Assert().Equal("Otros", response.Data[15].Title)
}

func (suite *TestSuiteStandard) TestCategorySelectionDefault() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/selection", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategorySelectionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Alimentacion", response.Data.Group.Title)
	suite.Assert().Equal("Supermercado", response.Data.Category)
}

// A category that is not part of the selected group resets to the group's
// first entry.
func (suite *TestSuiteStandard) TestCategorySelectionReset() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/selection?group=Transporte&category=Supermercado", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategorySelectionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Transporte", response.Data.Group.Title)
	suite.Assert().Equal("Combustible", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCategorySelectionConsistent() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories/selection?group=Ocio&category=Cine", nil, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategorySelectionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Ocio", response.Data.Group.Title)
	suite.Assert().Equal("Cine", response.Data.Category)
}
