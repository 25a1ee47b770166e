package models

import "time"

// Like is a join row keyed by (user_id, res_id); at most one per pair.
type Like struct {
	UserID   int64     `json:"user_id" db:"user_id"`
	ResID    int64     `json:"res_id" db:"res_id"`
	DateLike time.Time `json:"date_like" db:"date_like"`
}

type LikeWithUser struct {
	Like
	User UserSummary `json:"user"`
}

type LikeWithRestaurant struct {
	Like
	Restaurant RestaurantSummary `json:"restaurant"`
}
