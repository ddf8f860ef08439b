package session_fx

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"eqsense/internal/infra"
	"eqsense/internal/repositories"
)

var Module = fx.Provide(provideSessionStore)

func sessionTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("SESSION_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return repositories.DefaultSessionTTL
	}
	return time.Duration(minutes) * time.Minute
}

func provideSessionStore(lc fx.Lifecycle) repositories.SessionRepositoryInterface {
	ttl := sessionTTL()

	switch os.Getenv("SESSION_STORE") {
	case "redis":
		client := infra.InitRedis()
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseRedis(client)
				return nil
			},
		})
		return repositories.NewRedisSessionStore(client, ttl)

	case "postgres":
		db := infra.InitPostgresql()
		store := repositories.NewPostgresSessionStore(db, ttl)
		if err := store.ReapExpired(context.Background()); err != nil {
			log.Printf("Failed to reap expired sessions: %v", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		return store

	default:
		return repositories.NewMemorySessionStore(ttl)
	}
}
