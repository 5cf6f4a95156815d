package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server holding session state, retrying a
// few times so the service survives redis coming up after it.
func InitRedis(cfg *Config) (*redis.Client, error) {
	const maxRetries = 5
	const retryDelay = 5 * time.Second

	var client *redis.Client
	var err error
	for i := 0; i < maxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			return client, nil
		}

		fmt.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, maxRetries, err.Error())
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}
