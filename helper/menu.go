package helper

import (
	"context"
	"fsdine_restaurant/logger"
	"strconv"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
)

const menuItemIDsKey = "menu:item_ids"

// emptyMarker keeps the set present when the menu has no items, so an empty
// menu is cached instead of reloaded on every lookup.
const emptyMarker = "-"

type MenuItemIDLoader interface {
	AllMenuItemIDs(ctx context.Context) ([]uint, error)
}

// MenuCache keeps the ids of every menu item in a redis set so order
// placement can check item references without touching the database.
type MenuCache struct {
	client *redis.Client
	loader MenuItemIDLoader
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, loader MenuItemIDLoader, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, loader: loader, ttl: ttl}
}

func (m *MenuCache) Refresh(ctx context.Context) error {
	ids, err := m.loader.AllMenuItemIDs(ctx)
	if err != nil {
		return err
	}

	members := make([]interface{}, 0, len(ids)+1)
	members = append(members, emptyMarker)
	for _, id := range ids {
		members = append(members, strconv.FormatUint(uint64(id), 10))
	}

	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, menuItemIDsKey)
		pipe.SAdd(ctx, menuItemIDsKey, members...)
		pipe.Expire(ctx, menuItemIDsKey, m.ttl)
		return nil
	})
	return err
}

// KnownItems reports, per id, whether a menu item with that id exists.
// A missing or expired cache is rebuilt from the loader first, and a cache
// that misses any id is rebuilt once more so items added since the last
// refresh are found.
func (m *MenuCache) KnownItems(ctx context.Context, ids []int) (map[int]bool, error) {
	known := make(map[int]bool, len(ids))
	if len(ids) == 0 {
		return known, nil
	}

	exists, err := m.client.Exists(ctx, menuItemIDsKey).Result()
	if err != nil {
		return nil, err
	}
	refreshed := false
	if exists == 0 {
		if err := m.Refresh(ctx); err != nil {
			return nil, err
		}
		refreshed = true
	}

	missing, err := m.lookup(ctx, ids, known)
	if err != nil {
		return nil, err
	}
	if missing && !refreshed {
		if err := m.Refresh(ctx); err != nil {
			return nil, err
		}
		if _, err := m.lookup(ctx, ids, known); err != nil {
			return nil, err
		}
	}
	return known, nil
}

func (m *MenuCache) lookup(ctx context.Context, ids []int, known map[int]bool) (bool, error) {
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = strconv.Itoa(id)
	}
	found, err := m.client.SMIsMember(ctx, menuItemIDsKey, members...).Result()
	if err != nil {
		return false, err
	}

	missing := false
	for i, id := range ids {
		known[id] = found[i]
		if !found[i] {
			missing = true
		}
	}
	return missing, nil
}

func StartMenuCacheScheduler(cache *MenuCache, every time.Duration) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := cache.Refresh(ctx); err != nil {
				logger.Get().WithError(err).Warn("menu cache refresh failed")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	logger.Get().WithField("every", every.String()).Info("menu cache scheduler started")
	return s, nil
}
