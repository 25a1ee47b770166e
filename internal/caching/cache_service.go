package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"foodcourt/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Restaurant caching
	GetRestaurant(ctx context.Context, resID int64) (*models.Restaurant, error)
	SetRestaurant(ctx context.Context, restaurant *models.Restaurant, ttl time.Duration) error
	DeleteRestaurant(ctx context.Context, resID int64) error

	// Aggregated like/rating stats
	GetStats(ctx context.Context, resID int64) (*models.RestaurantStats, error)
	SetStats(ctx context.Context, stats *models.RestaurantStats, ttl time.Duration) error
	DeleteStats(ctx context.Context, resID int64) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetRestaurant(ctx context.Context, resID int64) (*models.Restaurant, error) {
	key := fmt.Sprintf("foodcourt:restaurant:%d", resID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var restaurant models.Restaurant
	if err := json.Unmarshal(data, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *redisCacheService) SetRestaurant(ctx context.Context, restaurant *models.Restaurant, ttl time.Duration) error {
	key := fmt.Sprintf("foodcourt:restaurant:%d", restaurant.ID)
	data, err := json.Marshal(restaurant)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteRestaurant(ctx context.Context, resID int64) error {
	key := fmt.Sprintf("foodcourt:restaurant:%d", resID)
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetStats(ctx context.Context, resID int64) (*models.RestaurantStats, error) {
	key := fmt.Sprintf("foodcourt:stats:%d", resID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var stats models.RestaurantStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *redisCacheService) SetStats(ctx context.Context, stats *models.RestaurantStats, ttl time.Duration) error {
	key := fmt.Sprintf("foodcourt:stats:%d", stats.ResID)
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteStats(ctx context.Context, resID int64) error {
	key := fmt.Sprintf("foodcourt:stats:%d", resID)
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
