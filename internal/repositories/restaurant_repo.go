package repositories

import (
	"context"
	"errors"

	"foodcourt/internal/models"

	"github.com/jackc/pgx/v5"
)

type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Restaurant, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*models.Restaurant, error)
	ListIDs(ctx context.Context) ([]int64, error)
	SetImage(ctx context.Context, id int64, object string) error
	Stats(ctx context.Context, id int64) (*models.RestaurantStats, error)
}

type restaurantRepo struct {
	db Database
}

func NewRestaurantRepo(db Database) RestaurantRepository {
	return &restaurantRepo{db: db}
}

func (r *restaurantRepo) GetByID(ctx context.Context, id int64) (*models.Restaurant, error) {
	res := &models.Restaurant{}
	query := `
		SELECT res_id, res_name, image, description, created_at
		FROM restaurants
		WHERE res_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&res.ID, &res.Name, &res.Image, &res.Description, &res.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *restaurantRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM restaurants WHERE res_id = $1)`
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *restaurantRepo) List(ctx context.Context, limit, offset int) ([]*models.Restaurant, error) {
	query := `
		SELECT res_id, res_name, image, description, created_at
		FROM restaurants
		ORDER BY res_id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		res := &models.Restaurant{}
		if err := rows.Scan(&res.ID, &res.Name, &res.Image, &res.Description, &res.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}
	return restaurants, rows.Err()
}

func (r *restaurantRepo) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT res_id FROM restaurants ORDER BY res_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *restaurantRepo) SetImage(ctx context.Context, id int64, object string) error {
	tag, err := r.db.Exec(ctx, `UPDATE restaurants SET image = $1 WHERE res_id = $2`, object, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *restaurantRepo) Stats(ctx context.Context, id int64) (*models.RestaurantStats, error) {
	stats := &models.RestaurantStats{ResID: id}
	query := `
		SELECT
			(SELECT COUNT(*) FROM like_res WHERE res_id = $1),
			(SELECT COUNT(*) FROM rate_res WHERE res_id = $1),
			(SELECT COALESCE(AVG(amount), 0) FROM rate_res WHERE res_id = $1)
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&stats.LikeCount, &stats.RatingCount, &stats.AvgRating)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
