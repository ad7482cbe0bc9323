package db

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client   *mongo.Client
	database *mongo.Database
	once     sync.Once
	initErr  error
)

// Connect initializes the shared MongoDB client. The sync.Once guarantees a
// single connect attempt even under concurrent first requests; the client is
// reused across invocations for the lifetime of the process.
func Connect(ctx context.Context) (*mongo.Database, error) {
	once.Do(func() {
		uri := getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017")
		name := getEnv("MONGODB_DB", "techclub")

		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = fmt.Errorf("failed to connect to MongoDB: %w", err)
			return
		}
		if err := c.Ping(connectCtx, readpref.Primary()); err != nil {
			_ = c.Disconnect(connectCtx)
			initErr = fmt.Errorf("failed to ping MongoDB: %w", err)
			return
		}

		client = c
		database = c.Database(name)
	})
	return database, initErr
}

// Get returns the shared database handle, or nil before Connect succeeds.
func Get() *mongo.Database {
	return database
}

// IsConnected reports actual connectivity via a short ping, used by /health.
func IsConnected(ctx context.Context) bool {
	if client == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(pingCtx, readpref.Primary()) == nil
}

// Close disconnects the shared client.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
