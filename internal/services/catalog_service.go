package services

import (
	"context"
	"log"
	"time"

	"foodcourt/internal/caching"
	"foodcourt/internal/common"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
)

const (
	restaurantCacheTTL = 10 * time.Minute
	statsCacheTTL      = 10 * time.Minute
)

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context, limit, offset int) ([]*models.Restaurant, error)
	GetRestaurant(ctx context.Context, resID int64) (*models.Restaurant, error)
	Menu(ctx context.Context, resID int64) ([]*models.MenuSection, error)
	Stats(ctx context.Context, resID int64) (*models.RestaurantStats, error)
}

type catalogService struct {
	restaurants repositories.RestaurantRepository
	foods       repositories.FoodRepository
	cache       caching.CacheService
}

func NewCatalogService(restaurants repositories.RestaurantRepository, foods repositories.FoodRepository, cache caching.CacheService) CatalogServiceInterface {
	return &catalogService{
		restaurants: restaurants,
		foods:       foods,
		cache:       cache,
	}
}

func (s *catalogService) ListRestaurants(ctx context.Context, limit, offset int) ([]*models.Restaurant, error) {
	limit, offset = common.ValidateLimitOffset(limit, offset)
	return s.restaurants.List(ctx, limit, offset)
}

// GetRestaurant is a read-through cache: redis first, store on miss.
func (s *catalogService) GetRestaurant(ctx context.Context, resID int64) (*models.Restaurant, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRestaurant(ctx, resID)
		if err != nil {
			log.Printf("WARN: restaurant cache read failed for %d: %v", resID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	restaurant, err := s.restaurants.GetByID(ctx, resID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, common.NotFoundf("restaurant %d not found", resID)
	}

	if s.cache != nil {
		if err := s.cache.SetRestaurant(ctx, restaurant, restaurantCacheTTL); err != nil {
			log.Printf("WARN: restaurant cache write failed for %d: %v", resID, err)
		}
	}
	return restaurant, nil
}

func (s *catalogService) Menu(ctx context.Context, resID int64) ([]*models.MenuSection, error) {
	exists, err := s.restaurants.Exists(ctx, resID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("restaurant %d not found", resID)
	}
	sections, err := s.foods.MenuByRestaurant(ctx, resID)
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []*models.MenuSection{}
	}
	return sections, nil
}

func (s *catalogService) Stats(ctx context.Context, resID int64) (*models.RestaurantStats, error) {
	if s.cache != nil {
		cached, err := s.cache.GetStats(ctx, resID)
		if err != nil {
			log.Printf("WARN: stats cache read failed for %d: %v", resID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	exists, err := s.restaurants.Exists(ctx, resID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NotFoundf("restaurant %d not found", resID)
	}

	stats, err := s.restaurants.Stats(ctx, resID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetStats(ctx, stats, statsCacheTTL); err != nil {
			log.Printf("WARN: stats cache write failed for %d: %v", resID, err)
		}
	}
	return stats, nil
}
