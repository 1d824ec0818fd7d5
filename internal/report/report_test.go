package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

type fakeSummarizer struct {
	text string
	err  error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, students []models.Student) (string, error) {
	return f.text, f.err
}

func newTestService(s Summarizer) *Service {
	roster := []models.Student{{Name: "João Silva", Status: models.StatusPending, Fee: 100}}
	return NewService(s, store.NewMemoryStore(roster))
}

func TestServiceStartSuccess(t *testing.T) {
	svc := newTestService(&fakeSummarizer{text: "Resumo do mês."})

	text, generating, updatedAt := svc.Latest()
	assert.Empty(t, text)
	assert.False(t, generating)
	assert.True(t, updatedAt.IsZero())

	svc.Start()

	assert.Eventually(t, func() bool {
		_, generating, _ := svc.Latest()
		return !generating
	}, 2*time.Second, 10*time.Millisecond)

	text, _, updatedAt = svc.Latest()
	assert.Equal(t, "Resumo do mês.", text)
	assert.False(t, updatedAt.IsZero())
}

func TestServiceStartFailureFallsBack(t *testing.T) {
	svc := newTestService(&fakeSummarizer{err: errors.New("quota esgotada")})

	svc.Start()

	assert.Eventually(t, func() bool {
		_, generating, _ := svc.Latest()
		return !generating
	}, 2*time.Second, 10*time.Millisecond)

	text, _, _ := svc.Latest()
	assert.Equal(t, Fallback, text)
}

func TestServiceNotConfiguredFallsBack(t *testing.T) {
	svc := newTestService(&fakeSummarizer{err: ErrNotConfigured})

	svc.Start()

	assert.Eventually(t, func() bool {
		text, generating, _ := svc.Latest()
		return !generating && text == Fallback
	}, 2*time.Second, 10*time.Millisecond)
}

func TestBuildPromptListsPendingStudents(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	students := []models.Student{
		{
			Name:    "João Silva",
			Status:  models.StatusPending,
			DueDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local),
		},
		{
			Name:   "Maria Oliveira",
			Status: models.StatusPaid,
		},
	}

	prompt := buildPrompt(students, now)
	assert.Contains(t, prompt, "Março")
	assert.Contains(t, prompt, "João Silva")
	assert.Contains(t, prompt, "05/03/2024")
	assert.NotContains(t, prompt, "Maria Oliveira")
}
