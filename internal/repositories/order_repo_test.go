package repositories

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/common"
	"foodcourt/internal/models"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    OrderRepository
	context context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewOrderRepo(mock)
	suite.context = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_CommitsWholeWriteSet() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	suite.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int64(7)))
	suite.mock.ExpectQuery(`SELECT price FROM foods`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(int64(10)))
	suite.mock.ExpectQuery(`SELECT price FROM foods`).
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(int64(30)))

	batch := suite.mock.ExpectBatch()
	batch.ExpectExec(`INSERT INTO order_items`).
		WithArgs(int64(7), int64(5), 2, int64(10)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	batch.ExpectExec(`INSERT INTO order_items`).
		WithArgs(int64(7), int64(8), 1, int64(30)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	// Total is 2*10 + 1*30, from the snapshotted prices.
	suite.mock.ExpectExec(`UPDATE orders SET total_price`).
		WithArgs(int64(50), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	orderID, err := suite.repo.PlaceOrder(suite.context, 1, []models.OrderLine{
		{FoodID: 5, Quantity: 2},
		{FoodID: 8, Quantity: 1},
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), orderID)
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_UnknownFoodRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	suite.mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int64(7)))
	suite.mock.ExpectQuery(`SELECT price FROM foods`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)
	suite.mock.ExpectRollback()

	orderID, err := suite.repo.PlaceOrder(suite.context, 1, []models.OrderLine{
		{FoodID: 404, Quantity: 1},
	})
	assert.Error(suite.T(), err)
	assert.Zero(suite.T(), orderID)
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
}

func (suite *OrderRepoTestSuite) TestPlaceOrder_UnknownUserRollsBack() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	suite.mock.ExpectRollback()

	orderID, err := suite.repo.PlaceOrder(suite.context, 99, []models.OrderLine{
		{FoodID: 5, Quantity: 1},
	})
	assert.Error(suite.T(), err)
	assert.Zero(suite.T(), orderID)
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
}

func (suite *OrderRepoTestSuite) TestGetDetail_WithItems() {
	now := time.Now()
	suite.mock.ExpectQuery(`FROM orders`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "user_id", "status", "total_price", "order_date"}).
			AddRow(int64(7), int64(1), "pending", int64(20), now))
	suite.mock.ExpectQuery(`FROM order_items oi`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"order_item_id", "order_id", "food_id", "quantity", "price_at_order", "food_id", "name", "image", "price"}).
			AddRow(int64(11), int64(7), int64(5), 2, int64(10), int64(5), "Banh Mi", nil, int64(12)))

	detail, err := suite.repo.GetDetail(suite.context, 7)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(20), detail.TotalPrice)
	assert.Len(suite.T(), detail.Items, 1)
	// The line keeps the snapshot price even though the catalog price moved on.
	assert.Equal(suite.T(), int64(10), detail.Items[0].PriceAtOrder)
	assert.Equal(suite.T(), int64(12), detail.Items[0].Food.Price)
}

func (suite *OrderRepoTestSuite) TestGetDetail_Missing() {
	suite.mock.ExpectQuery(`FROM orders`).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	detail, err := suite.repo.GetDetail(suite.context, 404)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), detail)
}

func (suite *OrderRepoTestSuite) TestListByUser_GroupsItemsByOrder() {
	now := time.Now()
	suite.mock.ExpectQuery(`FROM orders`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "user_id", "status", "total_price", "order_date"}).
			AddRow(int64(8), int64(1), "pending", int64(30), now).
			AddRow(int64(7), int64(1), "pending", int64(20), now.Add(-time.Hour)))
	suite.mock.ExpectQuery(`FROM order_items oi`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"order_item_id", "order_id", "food_id", "quantity", "price_at_order", "food_id", "name", "image", "price"}).
			AddRow(int64(11), int64(7), int64(5), 2, int64(10), int64(5), "Banh Mi", nil, int64(10)).
			AddRow(int64(12), int64(8), int64(8), 1, int64(30), int64(8), "Com Tam", nil, int64(30)))

	orders, err := suite.repo.ListByUser(suite.context, 1)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), orders, 2)
	assert.Equal(suite.T(), int64(8), orders[0].ID)
	assert.Len(suite.T(), orders[0].Items, 1)
	assert.Equal(suite.T(), "Com Tam", orders[0].Items[0].Food.Name)
	assert.Len(suite.T(), orders[1].Items, 1)
}
