package database

import (
	"context"
	"fmt"
	"time"

	"oakline-partners/pkg/config"
	"oakline-partners/pkg/logger"
	"oakline-partners/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
	maxPoolSize       = 100
)

// package-level handles, set once by InitDB
var (
	MongoClient *mongo.Client
	DB          *mongo.Database
)

// InitDB connects to MongoDB, verifies the connection with a ping and sets
// the package handles used by the repositories.
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(connectTimeout).
		SetMaxPoolSize(maxPoolSize)

	client, err := timedClientCall(ctx, "connect", func(ctx context.Context) (*mongo.Client, error) {
		return mongo.Connect(ctx, opts)
	})
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}

	if _, err := timedClientCall(ctx, "ping", func(ctx context.Context) (*mongo.Client, error) {
		return client, client.Ping(ctx, nil)
	}); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("mongo ping: %w", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Database.DBName)
	logger.GlobalLogger.Printf("MongoDB connected: db=%s", cfg.Database.DBName)
	return nil
}

// CloseDB disconnects the client. Safe to call when InitDB never ran.
func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if _, err := timedClientCall(ctx, "disconnect", func(ctx context.Context) (*mongo.Client, error) {
		return nil, MongoClient.Disconnect(ctx)
	}); err != nil {
		logger.GlobalLogger.Errorf("MongoDB disconnect failed: %v", err)
		return
	}
	logger.GlobalLogger.Println("MongoDB connection closed")
}

// timedClientCall records duration and error metrics around a client-level
// operation. Collection-level timing lives in the repositories.
func timedClientCall(ctx context.Context, op string, fn func(context.Context) (*mongo.Client, error)) (*mongo.Client, error) {
	start := time.Now()
	client, err := fn(ctx)
	metrics.MongoOperationDuration.WithLabelValues(op, "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues(op, "").Inc()
		logger.GlobalLogger.Errorf("MongoDB %s failed: %v", op, err)
		return nil, err
	}
	return client, nil
}
