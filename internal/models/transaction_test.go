package models_test

import (
	"time"

	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/I4AN/MagnetWallet/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionTrimsFields() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Category: "  Supermercado ",
		Note:     " weekly groceries ",
	})

	suite.Assert().Equal("Supermercado", transaction.Category)
	suite.Assert().Equal("weekly groceries", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionEmptyCategoryUncategorized() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:   user.ID,
		Category: "   ",
	})

	suite.Assert().Equal(models.Uncategorized, transaction.Category)
}

func (suite *TestSuiteStandard) TestTransactionAmountMustBePositive() {
	user := suite.createTestUser(models.User{})

	transaction := models.Transaction{
		UserID:   user.ID,
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Kind:     models.KindExpense,
		Category: "Supermercado",
		Amount:   decimal.NewFromInt(-10),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	transaction.Amount = decimal.Zero
	err = models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionDateRequired() {
	user := suite.createTestUser(models.User{})

	transaction := models.Transaction{
		UserID:   user.ID,
		Kind:     models.KindExpense,
		Category: "Supermercado",
		Amount:   decimal.NewFromInt(10),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrDateNotSet)
}

func (suite *TestSuiteStandard) TestTransactionKindValidated() {
	user := suite.createTestUser(models.User{})

	transaction := models.Transaction{
		UserID:   user.ID,
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Kind:     "transfer",
		Category: "Supermercado",
		Amount:   decimal.NewFromInt(10),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrKindInvalid)
}

func (suite *TestSuiteStandard) TestTransactionsForUserOrder() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{Email: "other@example.com"})

	older := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: other.ID,
		Date:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := models.TransactionsForUser(user.ID)
	suite.Assert().Nil(err)
	suite.Assert().Len(transactions, 2)
	suite.Assert().Equal(newer.ID, transactions[0].ID)
	suite.Assert().Equal(older.ID, transactions[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsForMonth() {
	user := suite.createTestUser(models.User{})

	inMonth := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Date:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Date:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := models.TransactionsForMonth(user.ID, types.NewMonth(2024, 3))
	suite.Assert().Nil(err)
	suite.Assert().Len(transactions, 1)
	suite.Assert().Equal(inMonth.ID, transactions[0].ID)
}
