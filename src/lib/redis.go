package lib

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

const idempotencyTTL = 10 * time.Minute

func idempotencyKey(key string) string {
	return fmt.Sprintf("booking:idem:%s", key)
}

// RememberBookingRequest records a client idempotency key against the
// booking it produced. Returns false when the key was already used.
func RememberBookingRequest(ctx context.Context, key string, bookingId uint) bool {
	rdb := GetRedisClient()
	if rdb == nil {
		return true
	}
	ok, err := rdb.SetNX(ctx, idempotencyKey(key), bookingId, idempotencyTTL).Result()
	if err != nil {
		log.Printf("[redis] Error caching idempotency key [%s]: %s\n", key, err.Error())
		return true
	}
	return ok
}

// LookupBookingRequest returns the booking already created for an
// idempotency key, if any.
func LookupBookingRequest(ctx context.Context, key string) (uint, bool) {
	rdb := GetRedisClient()
	if rdb == nil {
		return 0, false
	}
	val, err := rdb.Get(ctx, idempotencyKey(key)).Uint64()
	if err == redis.Nil {
		return 0, false
	} else if err != nil {
		log.Printf("[redis] Error reading idempotency key [%s]: %s\n", key, err.Error())
		return 0, false
	}
	return uint(val), true
}
