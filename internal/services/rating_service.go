package services

import (
	"context"
	"log"

	"foodcourt/internal/caching"
	"foodcourt/internal/common"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
)

const (
	RatingStatusCreated = "created"
	RatingStatusUpdated = "updated"

	minRating = 1
	maxRating = 5
)

// RatingResult is a rating row tagged with what the upsert did.
type RatingResult struct {
	models.Rating
	Status string `json:"status"`
}

type RatingServiceInterface interface {
	RateRestaurant(ctx context.Context, userID, resID int64, amount int) (*RatingResult, error)
	RatingsByRestaurant(ctx context.Context, resID int64) ([]*models.RatingWithUser, error)
	RatingsByUser(ctx context.Context, userID int64) ([]*models.RatingWithRestaurant, error)
}

type ratingService struct {
	ratings     repositories.RatingRepository
	users       repositories.UserRepository
	restaurants repositories.RestaurantRepository
	cache       caching.CacheService
}

func NewRatingService(ratings repositories.RatingRepository, users repositories.UserRepository, restaurants repositories.RestaurantRepository, cache caching.CacheService) RatingServiceInterface {
	return &ratingService{
		ratings:     ratings,
		users:       users,
		restaurants: restaurants,
		cache:       cache,
	}
}

func (s *ratingService) RateRestaurant(ctx context.Context, userID, resID int64, amount int) (*RatingResult, error) {
	// Amount is checked before any store access.
	if amount < minRating || amount > maxRating {
		return nil, common.BadRequestf("rating amount must be an integer between %d and %d", minRating, maxRating)
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("user %d not found", userID)
	}
	exists, err = s.restaurants.Exists(ctx, resID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("restaurant %d not found", resID)
	}

	rating, created, err := s.ratings.Upsert(ctx, userID, resID, amount)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteStats(ctx, resID); err != nil {
			log.Printf("WARN: failed to invalidate stats cache for restaurant %d: %v", resID, err)
		}
	}

	status := RatingStatusUpdated
	if created {
		status = RatingStatusCreated
	}
	return &RatingResult{Rating: *rating, Status: status}, nil
}

func (s *ratingService) RatingsByRestaurant(ctx context.Context, resID int64) ([]*models.RatingWithUser, error) {
	exists, err := s.restaurants.Exists(ctx, resID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("restaurant %d not found", resID)
	}
	return s.ratings.ListByRestaurant(ctx, resID)
}

func (s *ratingService) RatingsByUser(ctx context.Context, userID int64) ([]*models.RatingWithRestaurant, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("user %d not found", userID)
	}
	return s.ratings.ListByUser(ctx, userID)
}
