package repositories

import (
	"context"

	"foodcourt/internal/models"
)

type RatingRepository interface {
	// Upsert creates the rating or overwrites the amount and timestamp of an
	// existing one. The bool reports whether a new row was created.
	Upsert(ctx context.Context, userID, resID int64, amount int) (*models.Rating, bool, error)
	ListByRestaurant(ctx context.Context, resID int64) ([]*models.RatingWithUser, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.RatingWithRestaurant, error)
}

type ratingRepo struct {
	db Database
}

func NewRatingRepo(db Database) RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Upsert(ctx context.Context, userID, resID int64, amount int) (*models.Rating, bool, error) {
	rating := &models.Rating{}
	var created bool
	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	query := `
		INSERT INTO rate_res (user_id, res_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, res_id)
		DO UPDATE SET amount = EXCLUDED.amount, date_rate = NOW()
		RETURNING user_id, res_id, amount, date_rate, (xmax = 0)
	`
	err := r.db.QueryRow(ctx, query, userID, resID, amount).
		Scan(&rating.UserID, &rating.ResID, &rating.Amount, &rating.DateRate, &created)
	if err != nil {
		return nil, false, err
	}
	return rating, created, nil
}

func (r *ratingRepo) ListByRestaurant(ctx context.Context, resID int64) ([]*models.RatingWithUser, error) {
	query := `
		SELECT rr.user_id, rr.res_id, rr.amount, rr.date_rate, u.user_id, u.full_name, u.email
		FROM rate_res rr
		JOIN users u ON u.user_id = rr.user_id
		WHERE rr.res_id = $1
		ORDER BY rr.date_rate DESC
	`
	rows, err := r.db.Query(ctx, query, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*models.RatingWithUser
	for rows.Next() {
		rating := &models.RatingWithUser{}
		if err := rows.Scan(&rating.UserID, &rating.ResID, &rating.Amount, &rating.DateRate, &rating.User.ID, &rating.User.FullName, &rating.User.Email); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *ratingRepo) ListByUser(ctx context.Context, userID int64) ([]*models.RatingWithRestaurant, error) {
	query := `
		SELECT rr.user_id, rr.res_id, rr.amount, rr.date_rate, rs.res_id, rs.res_name, rs.image
		FROM rate_res rr
		JOIN restaurants rs ON rs.res_id = rr.res_id
		WHERE rr.user_id = $1
		ORDER BY rr.date_rate DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*models.RatingWithRestaurant
	for rows.Next() {
		rating := &models.RatingWithRestaurant{}
		if err := rows.Scan(&rating.UserID, &rating.ResID, &rating.Amount, &rating.DateRate, &rating.Restaurant.ID, &rating.Restaurant.Name, &rating.Restaurant.Image); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
