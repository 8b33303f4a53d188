package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
	"github.com/redis/go-redis/v9"
)

const reportCacheKeyPrefix = "dashboard:report:"

// ReportCache caches assembled teacher-dashboard reports. A nil Redis client
// turns every operation into a no-op so the dashboard still works without
// Redis.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttlSeconds int) *ReportCache {
	return &ReportCache{client: client, ttl: time.Duration(ttlSeconds) * time.Second}
}

// Get returns the cached report for the key, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) (*dto.DashboardResponse, error) {
	if c.client == nil || c.ttl <= 0 {
		return nil, nil
	}
	data, err := c.client.Get(ctx, reportCacheKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report dto.DashboardResponse
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Set stores the report under the key with the configured TTL.
func (c *ReportCache) Set(ctx context.Context, key string, report *dto.DashboardResponse) error {
	if c.client == nil || c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportCacheKeyPrefix+key, data, c.ttl).Err()
}
