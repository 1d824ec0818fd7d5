package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis wires the optional Redis client used to persist the academy
// logo. Without REDIS_ADDR the logo falls back to in-process storage.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR não definido, o logotipo não será persistido entre reinícios.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Não foi possível conectar ao Redis", "error", err)
		RDB = nil
		return
	}

	slog.Info("Conexão com o Redis estabelecida.")
}
