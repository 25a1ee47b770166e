package services

import (
	"context"
	"time"

	"foodcourt/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock repositories and cache shared by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurantRepository) List(ctx context.Context, limit, offset int) ([]*models.Restaurant, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) ListIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRestaurantRepository) SetImage(ctx context.Context, id int64, object string) error {
	args := m.Called(ctx, id, object)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Stats(ctx context.Context, id int64) (*models.RestaurantStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RestaurantStats), args.Error(1)
}

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) GetByID(ctx context.Context, id int64) (*models.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) SetImage(ctx context.Context, id int64, object string) error {
	args := m.Called(ctx, id, object)
	return args.Error(0)
}

func (m *MockFoodRepository) MenuByRestaurant(ctx context.Context, resID int64) ([]*models.MenuSection, error) {
	args := m.Called(ctx, resID)
	return args.Get(0).([]*models.MenuSection), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) FindOrCreate(ctx context.Context, userID, resID int64) (*models.Like, bool, error) {
	args := m.Called(ctx, userID, resID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Like), args.Bool(1), args.Error(2)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, resID int64) (int64, error) {
	args := m.Called(ctx, userID, resID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) ListByRestaurant(ctx context.Context, resID int64) ([]*models.LikeWithUser, error) {
	args := m.Called(ctx, resID)
	return args.Get(0).([]*models.LikeWithUser), args.Error(1)
}

func (m *MockLikeRepository) ListByUser(ctx context.Context, userID int64) ([]*models.LikeWithRestaurant, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.LikeWithRestaurant), args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, userID, resID int64, amount int) (*models.Rating, bool, error) {
	args := m.Called(ctx, userID, resID, amount)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Rating), args.Bool(1), args.Error(2)
}

func (m *MockRatingRepository) ListByRestaurant(ctx context.Context, resID int64) ([]*models.RatingWithUser, error) {
	args := m.Called(ctx, resID)
	return args.Get(0).([]*models.RatingWithUser), args.Error(1)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID int64) ([]*models.RatingWithRestaurant, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.RatingWithRestaurant), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) PlaceOrder(ctx context.Context, userID int64, lines []models.OrderLine) (int64, error) {
	args := m.Called(ctx, userID, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetDetail(ctx context.Context, orderID int64) (*models.OrderDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID int64) ([]*models.OrderDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.OrderDetail), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetRestaurant(ctx context.Context, resID int64) (*models.Restaurant, error) {
	args := m.Called(ctx, resID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockCacheService) SetRestaurant(ctx context.Context, restaurant *models.Restaurant, ttl time.Duration) error {
	args := m.Called(ctx, restaurant, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteRestaurant(ctx context.Context, resID int64) error {
	args := m.Called(ctx, resID)
	return args.Error(0)
}

func (m *MockCacheService) GetStats(ctx context.Context, resID int64) (*models.RestaurantStats, error) {
	args := m.Called(ctx, resID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RestaurantStats), args.Error(1)
}

func (m *MockCacheService) SetStats(ctx context.Context, stats *models.RestaurantStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteStats(ctx context.Context, resID int64) error {
	args := m.Called(ctx, resID)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
