package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/laudohub/laudohub-api/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	statsKeyPrefix = "dashboard:stats:"
	statsCacheTTL  = time.Minute
)

// StatsCache keeps dashboard aggregates in Redis so list-heavy dashboards do
// not recompute on every poll. Entries are invalidated whenever a report is
// created or transitions status; a cache failure is never fatal.
type StatsCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewStatsCache(redisClient *redis.Client, log *logrus.Logger) *StatsCache {
	return &StatsCache{redisClient: redisClient, log: log}
}

func statsKey(professionalID uuid.UUID) string {
	return fmt.Sprintf("%s%s", statsKeyPrefix, professionalID)
}

// Get returns the cached stats, or nil on miss.
func (c *StatsCache) Get(ctx context.Context, professionalID uuid.UUID) *dto.DashboardStatsResponse {
	raw, err := c.redisClient.Get(ctx, statsKey(professionalID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read stats cache for %s: %+v", professionalID, err)
		}
		return nil
	}

	var stats dto.DashboardStatsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warnf("Corrupt stats cache entry for %s: %+v", professionalID, err)
		return nil
	}
	return &stats
}

// Set stores freshly computed stats.
func (c *StatsCache) Set(ctx context.Context, professionalID uuid.UUID, stats *dto.DashboardStatsResponse) {
	raw, err := json.Marshal(stats)
	if err != nil {
		c.log.Warnf("Failed to marshal stats for %s: %+v", professionalID, err)
		return
	}
	if err := c.redisClient.Set(ctx, statsKey(professionalID), raw, statsCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write stats cache for %s: %+v", professionalID, err)
	}
}

// Invalidate drops the cached entry after a report mutation.
func (c *StatsCache) Invalidate(ctx context.Context, professionalID uuid.UUID) {
	if err := c.redisClient.Del(ctx, statsKey(professionalID)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate stats cache for %s: %+v", professionalID, err)
	}
}
