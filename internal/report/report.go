// Package report produces the AI-generated financial summary shown on the
// admin dashboard. Generation is asynchronous and failures never leave this
// package: callers always get either the latest text or the fixed fallback.
package report

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// Fallback is shown whenever generation fails, for any reason.
const Fallback = "Não foi possível gerar a análise agora. Verifique a lista de pendentes abaixo."

// ErrNotConfigured signals that no text-generation backend is available.
var ErrNotConfigured = errors.New("cliente de geração de texto não configurado")

// Summarizer turns the roster into a narrative summary. Implementations may
// be slow and may fail; callers must treat both as non-fatal.
type Summarizer interface {
	Summarize(ctx context.Context, students []models.Student) (string, error)
}

// Service runs summary generation in the background. A request sets the
// generating flag, and only completion (success or failure) clears it. Two
// overlapping requests are allowed; the one finishing last wins.
type Service struct {
	summarizer Summarizer
	students   store.StudentStore
	timeout    time.Duration

	mu        sync.Mutex
	inFlight  int
	latest    string
	updatedAt time.Time
}

func NewService(summarizer Summarizer, students store.StudentStore) *Service {
	return &Service{
		summarizer: summarizer,
		students:   students,
		timeout:    60 * time.Second,
	}
}

// Start kicks off one generation and returns immediately.
func (s *Service) Start() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		text := Fallback
		students, err := s.students.List(ctx)
		if err != nil {
			slog.Error("Falha ao carregar alunos para o relatório", "error", err)
		} else if generated, err := s.summarizer.Summarize(ctx, students); err != nil {
			slog.Error("Falha ao gerar relatório", "error", err)
		} else {
			text = generated
		}

		s.mu.Lock()
		s.inFlight--
		s.latest = text
		s.updatedAt = time.Now()
		s.mu.Unlock()
	}()
}

// Latest returns the most recent summary text and whether any generation is
// still in flight.
func (s *Service) Latest() (text string, generating bool, updatedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.inFlight > 0, s.updatedAt
}
