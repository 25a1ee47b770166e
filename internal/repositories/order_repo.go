package repositories

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/internal/common"
	"foodcourt/internal/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	// PlaceOrder runs the whole write set in one transaction: user check,
	// order insert, per-line food price snapshot, item bulk insert, total
	// update. Any failure rolls the transaction back before the error is
	// returned, so partial orders are never persisted.
	PlaceOrder(ctx context.Context, userID int64, lines []models.OrderLine) (int64, error)
	GetDetail(ctx context.Context, orderID int64) (*models.OrderDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.OrderDetail, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) PlaceOrder(ctx context.Context, userID int64, lines []models.OrderLine) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin order transaction: %w", err)
	}
	// No-op once the transaction has been committed.
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return 0, common.NotFoundf("user %d not found", userID)
	}

	var orderID int64
	insertOrder := `
		INSERT INTO orders (user_id, status)
		VALUES ($1, 'pending')
		RETURNING order_id
	`
	if err := tx.QueryRow(ctx, insertOrder, userID).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	// Snapshot each food's current price inside the transaction so a
	// concurrent catalog change cannot split the order across two prices.
	var total int64
	batch := &pgx.Batch{}
	for _, line := range lines {
		var price int64
		err := tx.QueryRow(ctx, `SELECT price FROM foods WHERE food_id = $1`, line.FoodID).Scan(&price)
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, common.NotFoundf("food %d not found", line.FoodID)
		}
		if err != nil {
			return 0, fmt.Errorf("resolve food %d: %w", line.FoodID, err)
		}
		total += price * int64(line.Quantity)
		batch.Queue(
			`INSERT INTO order_items (order_id, food_id, quantity, price_at_order) VALUES ($1, $2, $3, $4)`,
			orderID, line.FoodID, line.Quantity, price,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("insert order items: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("close item batch: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET total_price = $1 WHERE order_id = $2`, total, orderID); err != nil {
		return 0, fmt.Errorf("update order total: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit order: %w", err)
	}
	return orderID, nil
}

func (r *orderRepo) GetDetail(ctx context.Context, orderID int64) (*models.OrderDetail, error) {
	detail := &models.OrderDetail{Items: []models.OrderItemDetail{}}
	query := `
		SELECT order_id, user_id, status, total_price, order_date
		FROM orders
		WHERE order_id = $1
	`
	err := r.db.QueryRow(ctx, query, orderID).
		Scan(&detail.ID, &detail.UserID, &detail.Status, &detail.TotalPrice, &detail.OrderDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrders(ctx, `WHERE oi.order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	detail.Items = items[orderID]
	if detail.Items == nil {
		detail.Items = []models.OrderItemDetail{}
	}
	return detail, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64) ([]*models.OrderDetail, error) {
	query := `
		SELECT order_id, user_id, status, total_price, order_date
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.OrderDetail
	for rows.Next() {
		detail := &models.OrderDetail{Items: []models.OrderItemDetail{}}
		if err := rows.Scan(&detail.ID, &detail.UserID, &detail.Status, &detail.TotalPrice, &detail.OrderDate); err != nil {
			return nil, err
		}
		orders = append(orders, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.itemsForOrders(ctx, `JOIN orders o ON o.order_id = oi.order_id WHERE o.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if lines, ok := items[order.ID]; ok {
			order.Items = lines
		}
	}
	return orders, nil
}

// itemsForOrders fetches order lines with their food summaries, grouped by
// order id. The clause selects which orders' items to load.
func (r *orderRepo) itemsForOrders(ctx context.Context, clause string, arg any) (map[int64][]models.OrderItemDetail, error) {
	query := `
		SELECT oi.order_item_id, oi.order_id, oi.food_id, oi.quantity, oi.price_at_order,
		       f.food_id, f.name, f.image, f.price
		FROM order_items oi
		JOIN foods f ON f.food_id = oi.food_id
		` + clause + `
		ORDER BY oi.order_item_id
	`
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := map[int64][]models.OrderItemDetail{}
	for rows.Next() {
		item := models.OrderItemDetail{}
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.FoodID, &item.Quantity, &item.PriceAtOrder,
			&item.Food.ID, &item.Food.Name, &item.Food.Image, &item.Food.Price,
		); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}
