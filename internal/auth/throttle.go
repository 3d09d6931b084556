// Copyright (c) 2026 Reelist. All rights reserved.

package auth

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ngophan/reelist/internal/platform/apperr"
	"github.com/ngophan/reelist/internal/platform/constants"
)

// RedisThrottle implements [Throttle] with a fixed-window counter per
// email+IP pair.
//
// # Why redis?
//
// Login throttling state must expire on its own and be shared by every
// instance of the API; a process-local map would reset on deploys and
// let an attacker spread attempts across replicas.
type RedisThrottle struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisThrottle constructs a redis-backed login throttle.
func NewRedisThrottle(client *redis.Client, logger *slog.Logger) *RedisThrottle {
	return &RedisThrottle{client: client, logger: logger}
}

// Allow records one login attempt and fails with [apperr.RateLimited] once
// the window budget is exhausted.
//
// # Failure Mode
//
// Redis outages fail open: a broken throttle must not lock every user out
// of login. The incident is logged for alerting.
func (throttle *RedisThrottle) Allow(ctx context.Context, email, ip string) error {
	key := constants.RedisPrefixLoginThrottle + email + ":" + ip

	pipeline := throttle.client.TxPipeline()
	counter := pipeline.Incr(ctx, key)
	// NX keeps the original window deadline when the key already exists.
	pipeline.ExpireNX(ctx, key, constants.LoginThrottleWindow)

	if _, err := pipeline.Exec(ctx); err != nil {
		throttle.logger.WarnContext(ctx, "login_throttle_unavailable", slog.Any("error", err))
		return nil
	}

	if counter.Val() > int64(constants.LoginThrottleMaxAttempts) {
		return apperr.RateLimited(int(constants.LoginThrottleWindow.Seconds()))
	}

	return nil
}
