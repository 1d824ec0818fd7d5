// Package store holds the student roster behind a narrow interface so the
// HTTP layer never knows whether it is talking to the in-memory collection
// or to Postgres.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// ErrNotFound is returned when an id or CPF resolves to no student.
var ErrNotFound = errors.New("aluno não encontrado")

// StudentStore is the single source of truth for the roster.
type StudentStore interface {
	// List returns the whole roster in insertion order.
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id uint) (*models.Student, error)
	// FindByCPF returns the first student whose responsible CPF matches the
	// given one, both sides compared digits-only.
	FindByCPF(ctx context.Context, cpf string) (*models.Student, error)
	Create(ctx context.Context, s *models.Student) error
	Update(ctx context.Context, s *models.Student) error
	// Delete removes a student. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id uint) error
	// TogglePayment flips one (year, month) cell of a student's history and
	// returns the updated record.
	TogglePayment(ctx context.Context, id uint, year, monthIndex int, now time.Time) (*models.Student, error)
}
