package models

import "time"

type Order struct {
	ID         int64     `json:"order_id" db:"order_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Status     string    `json:"status" db:"status"`
	TotalPrice int64     `json:"total_price" db:"total_price"`
	OrderDate  time.Time `json:"order_date" db:"order_date"`
}

// OrderItem captures the unit price at order time. PriceAtOrder is a
// snapshot and is never recalculated from the current food price.
type OrderItem struct {
	ID           int64 `json:"order_item_id" db:"order_item_id"`
	OrderID      int64 `json:"order_id" db:"order_id"`
	FoodID       int64 `json:"food_id" db:"food_id"`
	Quantity     int   `json:"quantity" db:"quantity"`
	PriceAtOrder int64 `json:"price_at_order" db:"price_at_order"`
}

// OrderLine is one requested line of a new order.
type OrderLine struct {
	FoodID   int64 `json:"foodId"`
	Quantity int   `json:"quantity"`
}

type OrderItemDetail struct {
	OrderItem
	Food FoodSummary `json:"food"`
}

// OrderDetail is an order together with its lines and food summaries.
type OrderDetail struct {
	Order
	Items []OrderItemDetail `json:"items"`
}
