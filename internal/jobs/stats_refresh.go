package jobs

import (
	"context"
	"log"
	"time"

	"foodcourt/internal/caching"
	"foodcourt/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

const statsCacheTTL = 15 * time.Minute

// StatsRefresher periodically recomputes every restaurant's like/rating
// aggregates into the cache so stat reads rarely hit the store cold. It only
// warms caches; the ordering path never depends on it.
type StatsRefresher struct {
	scheduler   gocron.Scheduler
	restaurants repositories.RestaurantRepository
	cache       caching.CacheService
}

func NewStatsRefresher(restaurants repositories.RestaurantRepository, cache caching.CacheService, interval time.Duration) (*StatsRefresher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	r := &StatsRefresher{
		scheduler:   scheduler,
		restaurants: restaurants,
		cache:       cache,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(r.refresh, context.Background()),
		gocron.WithName("restaurant-stats-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *StatsRefresher) Start() {
	log.Printf("Starting restaurant stats refresher")
	r.scheduler.Start()
}

func (r *StatsRefresher) Stop() error {
	log.Printf("Stopping restaurant stats refresher")
	return r.scheduler.Shutdown()
}

func (r *StatsRefresher) refresh(ctx context.Context) {
	ids, err := r.restaurants.ListIDs(ctx)
	if err != nil {
		log.Printf("stats refresh: list restaurants: %v", err)
		return
	}

	refreshed := 0
	for _, id := range ids {
		stats, err := r.restaurants.Stats(ctx, id)
		if err != nil {
			log.Printf("stats refresh: restaurant %d: %v", id, err)
			continue
		}
		if err := r.cache.SetStats(ctx, stats, statsCacheTTL); err != nil {
			log.Printf("stats refresh: cache restaurant %d: %v", id, err)
			continue
		}
		refreshed++
	}
	log.Printf("stats refresh: updated %d/%d restaurants", refreshed, len(ids))
}
