package models

import "time"

// Rating is a join row keyed by (user_id, res_id). Amount is 1..5; a repeat
// rating overwrites the amount and refreshes the timestamp.
type Rating struct {
	UserID   int64     `json:"user_id" db:"user_id"`
	ResID    int64     `json:"res_id" db:"res_id"`
	Amount   int       `json:"amount" db:"amount"`
	DateRate time.Time `json:"date_rate" db:"date_rate"`
}

type RatingWithUser struct {
	Rating
	User UserSummary `json:"user"`
}

type RatingWithRestaurant struct {
	Rating
	Restaurant RestaurantSummary `json:"restaurant"`
}
