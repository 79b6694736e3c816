package infra

import (
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// SetupRedis builds the cache client from REDIS_* env vars. Returns nil
// when REDIS_ADDR is unset; callers treat a nil client as "no cache".
func SetupRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, product cache disabled")
		return nil
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Invalid REDIS_DB %q, using database 0", raw)
		} else {
			db = parsed
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	log.Println("Setup redis cache client")
	return client
}
