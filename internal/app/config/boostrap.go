package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Bolt           *bolt.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Bolt != nil {
		err := b.Bolt.Close()
		if err != nil {
			return err
		}
		b.Logger.Debug("Successfully closing preferences file")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Debug("Successfully closing Redis")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms
	_ = b.Logger.Sync()
	return nil
}
