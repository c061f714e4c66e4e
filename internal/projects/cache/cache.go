// Package cache carries the view-refresh signal fired by mutating project
// operations and a short-lived cached dashboard snapshot, both in Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/projects/domain"
)

const (
	// Views that mutating operations name on the refresh channel.
	ViewHome     = "home"
	ViewProjects = "projects"

	refreshChannel    = "views:refresh"    // Pub/Sub channel carrying view names
	dashboardStatsKey = "dashboard:stats"  // cached DashboardStats JSON
	dashboardStatsTTL = 5 * time.Minute
)

type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// InvalidateViews drops the cached dashboard snapshot and publishes the
// named views on the refresh channel so listening frontends can reload.
func (c *Cache) InvalidateViews(ctx context.Context, views ...string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, dashboardStatsKey)
	for _, v := range views {
		pipe.Publish(ctx, refreshChannel, v)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate views: %w", err)
	}
	return nil
}

// GetDashboard returns the cached snapshot, or (nil, nil) on a miss.
func (c *Cache) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := c.client.Get(ctx, dashboardStatsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard snapshot: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard snapshot: %w", err)
	}
	return &stats, nil
}

// SetDashboard stores a snapshot with a short TTL.
func (c *Cache) SetDashboard(ctx context.Context, stats *domain.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard snapshot: %w", err)
	}

	if err := c.client.Set(ctx, dashboardStatsKey, data, dashboardStatsTTL).Err(); err != nil {
		return fmt.Errorf("failed to store dashboard snapshot: %w", err)
	}
	return nil
}
