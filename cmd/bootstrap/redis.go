package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking-api/internal/infra/cache"
	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSlotCache,
	),
)

// NewSlotCache returns a nil SlotCache when REDIS_ADDR is unset; the booking
// usecase then reads slots straight from Postgres.
func NewSlotCache(lc fx.Lifecycle, cfg config.Config) (usecase.SlotCache, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("redis disabled, slot cache off")
		return nil, nil
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewSlotCache(client, cfg.Redis.SlotTTL), nil
}
