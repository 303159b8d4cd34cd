package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// Pinger is anything the health check can ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type healthUsecase struct {
	db    Pinger
	redis Pinger
}

// NewHealthUsecase checks db and, when non-nil, redis.
func NewHealthUsecase(db Pinger, redis Pinger) HealthUsecase {
	return &healthUsecase{db: db, redis: redis}
}

// Check reports the status of each dependency. Only the database decides
// overall health; redis is optional because rate limiting falls back to memory.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}
	healthy := true

	if err := u.db.Ping(ctx); err != nil {
		result["database"] = "unavailable"
		result["status"] = "degraded"
		healthy = false
	}

	if u.redis != nil {
		if err := u.redis.Ping(ctx); err != nil {
			result["redis"] = "unavailable"
		} else {
			result["redis"] = "ok"
		}
	}

	return result, healthy
}
