package utils

import (
	"context"
	"log"
	"time"

	"heirloom/config"

	"github.com/go-redis/redis/v8"
)

// SavedSetClient is the dedicated client for the durable saved-set storage.
var SavedSetClient *redis.Client

// InitSavedSetStore initializes the Redis client backing saved-set slots
// (using DB from AppConfig).
func InitSavedSetStore() {
	SavedSetClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSavedDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SavedSetClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Saved Sets): %v", err)
	}
}

// GetSavedSetClient returns the saved-set Redis client.
func GetSavedSetClient() *redis.Client {
	if SavedSetClient == nil {
		InitSavedSetStore()
	}
	return SavedSetClient
}
