package models_test

import (
	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestNormalizeCategoryName() {
	suite.Assert().Equal("comida", models.NormalizeCategoryName(" Comida "))
	suite.Assert().Equal("comida", models.NormalizeCategoryName("COMIDA"))
	suite.Assert().Equal("", models.NormalizeCategoryName("   "))
}

func (suite *TestSuiteStandard) TestUpsertBudgetCategory() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	first, err := models.UpsertBudgetCategory(user.ID, month, "Comida", decimal.NewFromInt(300))
	suite.Require().Nil(err)
	suite.Assert().Equal("Comida", first.Name)
	suite.Assert().True(first.Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestUpsertBudgetCategoryIdempotent() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_, err := models.UpsertBudgetCategory(user.ID, month, "Comida", decimal.NewFromInt(300))
	suite.Require().Nil(err)

	// Different casing and whitespace resolve to the same record, last write wins
	updated, err := models.UpsertBudgetCategory(user.ID, month, " COMIDA ", decimal.NewFromInt(450))
	suite.Require().Nil(err)
	suite.Assert().True(updated.Amount.Equal(decimal.NewFromInt(450)))

	budgets, err := models.BudgetsFor(user.ID, month)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 1)
	suite.Assert().True(budgets[0].Amount.Equal(decimal.NewFromInt(450)))
}

func (suite *TestSuiteStandard) TestUpsertBudgetCategoryScopedToMonth() {
	user := suite.createTestUser(models.User{})

	_, err := models.UpsertBudgetCategory(user.ID, types.NewMonth(2024, 3), "Comida", decimal.NewFromInt(300))
	suite.Require().Nil(err)
	_, err = models.UpsertBudgetCategory(user.ID, types.NewMonth(2024, 4), "Comida", decimal.NewFromInt(200))
	suite.Require().Nil(err)

	march, err := models.BudgetsFor(user.ID, types.NewMonth(2024, 3))
	suite.Require().Nil(err)
	suite.Assert().Len(march, 1)
	suite.Assert().True(march[0].Amount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestBudgetCategoryValidation() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_, err := models.UpsertBudgetCategory(user.ID, month, "   ", decimal.NewFromInt(300))
	suite.Assert().ErrorIs(err, models.ErrBudgetNameEmpty)

	_, err = models.UpsertBudgetCategory(user.ID, month, "Comida", decimal.Zero)
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestBudgetsForOrderedByName() {
	user := suite.createTestUser(models.User{})
	month := types.NewMonth(2024, 3)

	_, err := models.UpsertBudgetCategory(user.ID, month, "Transporte", decimal.NewFromInt(100))
	suite.Require().Nil(err)
	_, err = models.UpsertBudgetCategory(user.ID, month, "Comida", decimal.NewFromInt(300))
	suite.Require().Nil(err)

	budgets, err := models.BudgetsFor(user.ID, month)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal("Comida", budgets[0].Name)
	suite.Assert().Equal("Transporte", budgets[1].Name)
}
