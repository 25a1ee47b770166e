package models

import "time"

type Restaurant struct {
	ID          int64     `json:"res_id" db:"res_id"`
	Name        string    `json:"res_name" db:"res_name"`
	Image       *string   `json:"image" db:"image"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RestaurantSummary carries the public restaurant fields embedded in like/rating listings.
type RestaurantSummary struct {
	ID    int64   `json:"res_id" db:"res_id"`
	Name  string  `json:"res_name" db:"res_name"`
	Image *string `json:"image" db:"image"`
}

// RestaurantStats holds the aggregated like/rating figures for one restaurant.
type RestaurantStats struct {
	ResID       int64   `json:"res_id" db:"res_id"`
	LikeCount   int64   `json:"like_count" db:"like_count"`
	RatingCount int64   `json:"rating_count" db:"rating_count"`
	AvgRating   float64 `json:"avg_rating" db:"avg_rating"`
}
