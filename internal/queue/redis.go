package queue

import (
	"github.com/arco-app/backend/internal/cache"
	"github.com/arco-app/backend/internal/config"

	"github.com/hibiken/asynq"
)

// RedisOptions maps the cache config onto an asynq Redis connection.
func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	if cfg.Type == cache.RedisTypeCluster {
		return asynq.RedisClusterClientOpt{
			Addrs:    cfg.RedisCluster.Addresses,
			Password: cfg.RedisCluster.Password,
		}
	}

	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	}
}
