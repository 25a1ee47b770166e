package repositories

import (
	"context"
	"errors"

	"foodcourt/internal/models"

	"github.com/jackc/pgx/v5"
)

type LikeRepository interface {
	// FindOrCreate inserts the (user, restaurant) pair if absent. The bool
	// reports whether a new row was created.
	FindOrCreate(ctx context.Context, userID, resID int64) (*models.Like, bool, error)
	Delete(ctx context.Context, userID, resID int64) (int64, error)
	ListByRestaurant(ctx context.Context, resID int64) ([]*models.LikeWithUser, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.LikeWithRestaurant, error)
}

type likeRepo struct {
	db Database
}

func NewLikeRepo(db Database) LikeRepository {
	return &likeRepo{db: db}
}

func (r *likeRepo) FindOrCreate(ctx context.Context, userID, resID int64) (*models.Like, bool, error) {
	like := &models.Like{}
	insert := `
		INSERT INTO like_res (user_id, res_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, res_id) DO NOTHING
		RETURNING user_id, res_id, date_like
	`
	err := r.db.QueryRow(ctx, insert, userID, resID).Scan(&like.UserID, &like.ResID, &like.DateLike)
	if err == nil {
		return like, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// Conflict: the pair already exists, return the stored row.
	query := `SELECT user_id, res_id, date_like FROM like_res WHERE user_id = $1 AND res_id = $2`
	err = r.db.QueryRow(ctx, query, userID, resID).Scan(&like.UserID, &like.ResID, &like.DateLike)
	if err != nil {
		return nil, false, err
	}
	return like, false, nil
}

func (r *likeRepo) Delete(ctx context.Context, userID, resID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM like_res WHERE user_id = $1 AND res_id = $2`, userID, resID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *likeRepo) ListByRestaurant(ctx context.Context, resID int64) ([]*models.LikeWithUser, error) {
	query := `
		SELECT l.user_id, l.res_id, l.date_like, u.user_id, u.full_name, u.email
		FROM like_res l
		JOIN users u ON u.user_id = l.user_id
		WHERE l.res_id = $1
		ORDER BY l.date_like DESC
	`
	rows, err := r.db.Query(ctx, query, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []*models.LikeWithUser
	for rows.Next() {
		like := &models.LikeWithUser{}
		if err := rows.Scan(&like.UserID, &like.ResID, &like.DateLike, &like.User.ID, &like.User.FullName, &like.User.Email); err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}
	return likes, rows.Err()
}

func (r *likeRepo) ListByUser(ctx context.Context, userID int64) ([]*models.LikeWithRestaurant, error) {
	query := `
		SELECT l.user_id, l.res_id, l.date_like, rs.res_id, rs.res_name, rs.image
		FROM like_res l
		JOIN restaurants rs ON rs.res_id = l.res_id
		WHERE l.user_id = $1
		ORDER BY l.date_like DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []*models.LikeWithRestaurant
	for rows.Next() {
		like := &models.LikeWithRestaurant{}
		if err := rows.Scan(&like.UserID, &like.ResID, &like.DateLike, &like.Restaurant.ID, &like.Restaurant.Name, &like.Restaurant.Image); err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}
	return likes, rows.Err()
}
