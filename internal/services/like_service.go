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
	// LikeStatusLiked is returned on a fresh like, LikeStatusAlready when the
	// pair was stored before. A repeat like is not an error.
	LikeStatusLiked   = "liked"
	LikeStatusAlready = "already_liked"
)

// LikeResult is a like row tagged with what the call did.
type LikeResult struct {
	models.Like
	Status string `json:"status"`
}

type LikeServiceInterface interface {
	LikeRestaurant(ctx context.Context, userID, resID int64) (*LikeResult, error)
	UnlikeRestaurant(ctx context.Context, userID, resID int64) (int64, error)
	LikesByRestaurant(ctx context.Context, resID int64) ([]*models.LikeWithUser, error)
	LikesByUser(ctx context.Context, userID int64) ([]*models.LikeWithRestaurant, error)
}

type likeService struct {
	likes       repositories.LikeRepository
	users       repositories.UserRepository
	restaurants repositories.RestaurantRepository
	cache       caching.CacheService
}

func NewLikeService(likes repositories.LikeRepository, users repositories.UserRepository, restaurants repositories.RestaurantRepository, cache caching.CacheService) LikeServiceInterface {
	return &likeService{
		likes:       likes,
		users:       users,
		restaurants: restaurants,
		cache:       cache,
	}
}

func (s *likeService) LikeRestaurant(ctx context.Context, userID, resID int64) (*LikeResult, error) {
	if err := s.guardUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.guardRestaurant(ctx, resID); err != nil {
		return nil, err
	}

	like, created, err := s.likes.FindOrCreate(ctx, userID, resID)
	if err != nil {
		return nil, err
	}

	status := LikeStatusLiked
	if !created {
		status = LikeStatusAlready
	} else {
		s.invalidateStats(ctx, resID)
	}
	return &LikeResult{Like: *like, Status: status}, nil
}

func (s *likeService) UnlikeRestaurant(ctx context.Context, userID, resID int64) (int64, error) {
	deleted, err := s.likes.Delete(ctx, userID, resID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, common.NotFoundf("like not found for user %d and restaurant %d", userID, resID)
	}
	s.invalidateStats(ctx, resID)
	return deleted, nil
}

func (s *likeService) LikesByRestaurant(ctx context.Context, resID int64) ([]*models.LikeWithUser, error) {
	if err := s.guardRestaurant(ctx, resID); err != nil {
		return nil, err
	}
	return s.likes.ListByRestaurant(ctx, resID)
}

func (s *likeService) LikesByUser(ctx context.Context, userID int64) ([]*models.LikeWithRestaurant, error) {
	if err := s.guardUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.likes.ListByUser(ctx, userID)
}

func (s *likeService) guardUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NotFoundf("user %d not found", userID)
	}
	return nil
}

func (s *likeService) guardRestaurant(ctx context.Context, resID int64) error {
	exists, err := s.restaurants.Exists(ctx, resID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NotFoundf("restaurant %d not found", resID)
	}
	return nil
}

// Stale stats only degrade the cached aggregates, never the stored rows, so
// a failed invalidation is logged and swallowed.
func (s *likeService) invalidateStats(ctx context.Context, resID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteStats(ctx, resID); err != nil {
		log.Printf("WARN: failed to invalidate stats cache for restaurant %d: %v", resID, err)
	}
}
