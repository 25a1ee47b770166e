package services

import (
	"context"
	"fmt"

	"foodcourt/internal/common"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
)

const maxOrderLineQuantity = 10000

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, userID int64, lines []models.OrderLine) (*models.OrderDetail, error)
	OrdersByUser(ctx context.Context, userID int64) ([]*models.OrderDetail, error)
}

type orderService struct {
	orders repositories.OrderRepository
	users  repositories.UserRepository
}

func NewOrderService(orders repositories.OrderRepository, users repositories.UserRepository) OrderServiceInterface {
	return &orderService{
		orders: orders,
		users:  users,
	}
}

// PlaceOrder validates the requested lines, then hands the write set to the
// repository as one transaction and reports the committed order back with
// its items and food summaries.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64, lines []models.OrderLine) (*models.OrderDetail, error) {
	if len(lines) == 0 {
		return nil, common.BadRequestf("order items cannot be empty")
	}
	for i, line := range lines {
		if line.FoodID <= 0 {
			return nil, common.BadRequestf("item %d: foodId is required", i)
		}
		if err := common.ValidatePositiveInteger(line.Quantity, "quantity", maxOrderLineQuantity); err != nil {
			return nil, common.BadRequestf("item %d: %v", i, err)
		}
	}

	orderID, err := s.orders.PlaceOrder(ctx, userID, lines)
	if err != nil {
		return nil, err
	}

	detail, err := s.orders.GetDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("order %d vanished after commit", orderID)
	}
	return detail, nil
}

func (s *orderService) OrdersByUser(ctx context.Context, userID int64) ([]*models.OrderDetail, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("user %d not found", userID)
	}
	return s.orders.ListByUser(ctx, userID)
}
