package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect opens and pings a redis client.
func Connect(addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
