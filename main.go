package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/config"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/handlers"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/kv"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/report"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/routes"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	config.InitAuth()
	config.ConnectDB()
	config.ConnectRedis()
	config.InitGoogleServices()

	// Postgres when DB_URL is set, otherwise the seeded in-memory roster.
	var students store.StudentStore
	if config.DB != nil {
		gs, err := store.NewGormStore(config.DB)
		if err != nil {
			slog.Error("Falha ao preparar o banco de dados", "error", err)
			os.Exit(1)
		}
		students = gs
	} else {
		students = store.NewMemoryStore(store.SeedStudents())
	}

	var logoStore kv.Store
	if config.RDB != nil {
		logoStore = &kv.Redis{Client: config.RDB}
	} else {
		logoStore = kv.NewMemory()
	}

	hub := handlers.NewEventHub()
	go hub.Run()

	reportService := report.NewService(&report.GeminiSummarizer{Model: config.GeminiClient}, students)

	handlers.RegisterValidators()

	r := gin.Default()
	routes.SetupRoutes(r, routes.Handlers{
		Auth:      handlers.NewAuthHandler(students),
		Students:  handlers.NewStudentHandler(students, hub),
		Dashboard: handlers.NewDashboardHandler(students),
		Portal:    handlers.NewPortalHandler(students),
		Reports:   handlers.NewReportHandler(reportService),
		Logo:      handlers.NewLogoHandler(logoStore),
		Hub:       hub,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Servidor iniciado", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
