package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aicompliance/internal/model"
)

// DashboardCache handles Redis operations for per-user dashboard stats
type DashboardCache interface {
	Get(ctx context.Context, userID string) (*model.DashboardStats, error)
	Set(ctx context.Context, userID string, stats *model.DashboardStats) error
	Invalidate(ctx context.Context, userID string) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new dashboard stats cache
func NewDashboardCache(client *redis.Client) DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *dashboardCache) key(userID string) string {
	return fmt.Sprintf("user:%s:dashboard", userID)
}

func (c *dashboardCache) Get(ctx context.Context, userID string) (*model.DashboardStats, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.DashboardStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *dashboardCache) Set(ctx context.Context, userID string, stats *model.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *dashboardCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
