package cache

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"oakline-partners/pkg/config"
	"oakline-partners/pkg/logger"

	"github.com/go-redis/redis/v8"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

// RedisClient is set once by InitRedis and shared by every helper in this
// package.
var RedisClient *redis.Client

// InitRedis builds the client from config and verifies the connection.
func InitRedis(cfg *config.Config) error {
	tlsConfig, err := redisTLS(cfg)
	if err != nil {
		return err
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		TLSConfig:    tlsConfig,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	start := time.Now()
	if err := observe("ping", "", start, RedisClient.Ping(ctx).Err()); err != nil {
		return fmt.Errorf("redis connect: %w", err)
	}
	logger.GlobalLogger.Printf("Redis connected: addr=%s:%d, db=%d", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	return nil
}

// redisTLS returns nil when TLS is disabled. With TLS on, an optional cert
// file supplies the CA bundle used to verify the redis server.
func redisTLS(cfg *config.Config) (*tls.Config, error) {
	if !cfg.Redis.TLSEnabled {
		return nil, nil
	}
	if cfg.Redis.TLSCertFile == "" {
		return &tls.Config{}, nil
	}
	pem, err := os.ReadFile(cfg.Redis.TLSCertFile)
	if err != nil {
		return nil, fmt.Errorf("redis tls certificate: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("redis tls certificate: no PEM data in %s", cfg.Redis.TLSCertFile)
	}
	return &tls.Config{RootCAs: pool}, nil
}

// CloseRedis shuts the client down. Safe to call when InitRedis never ran.
func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		logger.GlobalLogger.Errorf("Redis close failed: %v", err)
		return
	}
	logger.GlobalLogger.Println("Redis connection closed")
}
