package services

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/common"
	"foodcourt/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RatingServiceTestSuite struct {
	suite.Suite
	ratings     *MockRatingRepository
	users       *MockUserRepository
	restaurants *MockRestaurantRepository
	cache       *MockCacheService
	service     RatingServiceInterface
	context     context.Context
}

func (suite *RatingServiceTestSuite) SetupTest() {
	suite.ratings = new(MockRatingRepository)
	suite.users = new(MockUserRepository)
	suite.restaurants = new(MockRestaurantRepository)
	suite.cache = new(MockCacheService)
	suite.service = NewRatingService(suite.ratings, suite.users, suite.restaurants, suite.cache)
	suite.context = context.Background()
}

func TestRatingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}

func (suite *RatingServiceTestSuite) TestRateRestaurant_Creates() {
	rating := &models.Rating{UserID: 1, ResID: 2, Amount: 4, DateRate: time.Now()}
	suite.users.On("Exists", suite.context, int64(1)).Return(true, nil)
	suite.restaurants.On("Exists", suite.context, int64(2)).Return(true, nil)
	suite.ratings.On("Upsert", suite.context, int64(1), int64(2), 4).Return(rating, true, nil)
	suite.cache.On("DeleteStats", suite.context, int64(2)).Return(nil)

	result, err := suite.service.RateRestaurant(suite.context, 1, 2, 4)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), RatingStatusCreated, result.Status)
	assert.Equal(suite.T(), 4, result.Amount)
}

func (suite *RatingServiceTestSuite) TestRateRestaurant_OverwritesExisting() {
	rating := &models.Rating{UserID: 1, ResID: 2, Amount: 5, DateRate: time.Now()}
	suite.users.On("Exists", suite.context, int64(1)).Return(true, nil)
	suite.restaurants.On("Exists", suite.context, int64(2)).Return(true, nil)
	suite.ratings.On("Upsert", suite.context, int64(1), int64(2), 5).Return(rating, false, nil)
	suite.cache.On("DeleteStats", suite.context, int64(2)).Return(nil)

	result, err := suite.service.RateRestaurant(suite.context, 1, 2, 5)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), RatingStatusUpdated, result.Status)
	assert.Equal(suite.T(), 5, result.Amount)
}

func (suite *RatingServiceTestSuite) TestRateRestaurant_AmountCheckedFirst() {
	for _, amount := range []int{0, -1, 6, 42} {
		result, err := suite.service.RateRestaurant(suite.context, 1, 2, amount)
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), result)
		assert.Equal(suite.T(), common.KindBadRequest, common.KindOf(err))
	}
	// An out-of-range amount never reaches the store.
	suite.users.AssertNotCalled(suite.T(), "Exists", mock.Anything, mock.Anything)
	suite.ratings.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatingServiceTestSuite) TestRateRestaurant_UnknownUser() {
	suite.users.On("Exists", suite.context, int64(99)).Return(false, nil)

	result, err := suite.service.RateRestaurant(suite.context, 99, 2, 3)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
}

func (suite *RatingServiceTestSuite) TestRateRestaurant_UnknownRestaurant() {
	suite.users.On("Exists", suite.context, int64(1)).Return(true, nil)
	suite.restaurants.On("Exists", suite.context, int64(404)).Return(false, nil)

	result, err := suite.service.RateRestaurant(suite.context, 1, 404, 3)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
	suite.ratings.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RatingServiceTestSuite) TestRatingsByRestaurant_Success() {
	ratings := []*models.RatingWithUser{
		{Rating: models.Rating{UserID: 1, ResID: 2, Amount: 5}, User: models.UserSummary{ID: 1, FullName: "Alice Nguyen"}},
	}
	suite.restaurants.On("Exists", suite.context, int64(2)).Return(true, nil)
	suite.ratings.On("ListByRestaurant", suite.context, int64(2)).Return(ratings, nil)

	got, err := suite.service.RatingsByRestaurant(suite.context, 2)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), 5, got[0].Amount)
}

func (suite *RatingServiceTestSuite) TestRatingsByUser_UnknownUser() {
	suite.users.On("Exists", suite.context, int64(99)).Return(false, nil)

	got, err := suite.service.RatingsByUser(suite.context, 99)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), got)
	assert.Equal(suite.T(), common.KindNotFound, common.KindOf(err))
}
