package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		fmt.Println("REDIS_ADDR not set, logout token revocation disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// RevokeToken blacklists a JWT until its natural expiry.
func RevokeToken(token string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return Client.Set(Ctx, "revoked:"+token, "1", ttl).Err()
}

// IsTokenRevoked reports whether a JWT was blacklisted by a logout.
func IsTokenRevoked(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "revoked:"+token).Result()
	return err == nil && n > 0
}
