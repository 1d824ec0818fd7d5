package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the Postgres connection when DB_URL is set. Without it the
// application runs on the in-memory roster, which is the normal mode for a
// single academy.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Info("DB_URL não definido, usando lista de alunos em memória.")
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Erro ao conectar ao banco de dados", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Conexão com o banco de dados estabelecida.")
}
