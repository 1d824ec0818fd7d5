package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/billing"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// GeminiSummarizer asks Gemini for the monthly payment analysis.
type GeminiSummarizer struct {
	Model *genai.GenerativeModel
}

func (g *GeminiSummarizer) Summarize(ctx context.Context, students []models.Student) (string, error) {
	if g.Model == nil {
		return "", ErrNotConfigured
	}

	resp, err := g.Model.GenerateContent(ctx, genai.Text(buildPrompt(students, time.Now())))
	if err != nil {
		return "", err
	}

	var text string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			text = string(part)
		}
	}
	if text == "" {
		return "", fmt.Errorf("resposta do Gemini sem conteúdo de texto")
	}
	return text, nil
}

func buildPrompt(students []models.Student, now time.Time) string {
	pending := billing.Pending(students)

	var names strings.Builder
	for i := range pending {
		fmt.Fprintf(&names, "- %s (Vence: %s)\n", pending[i].Name, pending[i].DueDate.Format("02/01/2006"))
	}
	list := strings.TrimRight(names.String(), "\n")
	if list == "" {
		list = "Nenhum pendente."
	}

	return fmt.Sprintf(
		"Você é o assistente financeiro do Professor Leandro Nascimento.\n"+
			"Analise a situação de pagamentos de %s.\n\n"+
			"Temos %d alunos pendentes.\n"+
			"Lista de Pendentes:\n%s\n\n"+
			"Tarefa:\n"+
			"1. Resuma quem são os alunos que precisam de atenção imediata (atrasados).\n"+
			"2. Sugira uma mensagem de texto curta e educada para enviar no WhatsApp desses alunos.\n"+
			"3. Dê uma estimativa de quanto o CT ainda tem a receber este mês.\n\n"+
			"Seja direto, use tom profissional mas amigável (clima de academia de Jiu Jitsu).",
		billing.MonthNames[int(now.Month())-1], len(pending), list)
}
