package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var GeminiClient *genai.GenerativeModel

// InitGoogleServices initializes the Gemini client used for the monthly
// financial summary. A missing key is not fatal: report generation then
// always answers with the fallback text.
func InitGoogleServices() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		slog.Warn("GEMINI_API_KEY não definido, a análise da IA ficará indisponível.")
		return
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		slog.Error("Não foi possível criar o cliente Gemini", "error", err)
		return
	}

	GeminiClient = client.GenerativeModel("gemini-1.5-flash")
	slog.Info("Cliente Gemini inicializado.")
}
