package models

import "time"

type User struct {
	ID        int64     `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserSummary carries the public user fields embedded in like/rating listings.
type UserSummary struct {
	ID       int64  `json:"user_id" db:"user_id"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
}
