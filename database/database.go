package database

import (
	"fmt"

	"github.com/bi1101/ielts-science-lms-sub003/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres connection used by all repositories.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.User, cfg.Database.Password, cfg.Database.Name, cfg.Database.Port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database.Name, err)
	}
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("Database connected")
	return db, nil
}

// NewRedisClient returns a Redis client for the dashboard report cache, or
// nil when no REDIS_ADDR is configured (caching is then skipped entirely).
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, dashboard report caching disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
}
