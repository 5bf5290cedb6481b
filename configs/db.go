package configs

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/daniellbaii/mp-fishnchips/repository"
)

// OpenStore builds the durable key-value store the cart snapshots and the
// order log live in.
func OpenStore(cfg *Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return repository.NewRedisStore(client), nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return repository.NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
