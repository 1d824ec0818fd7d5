package store

import (
	"context"
	"sync"
	"time"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/billing"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// MemoryStore keeps the roster in an ordered in-process slice. It is the
// default store when no database is configured. All methods copy records on
// the way in and out so callers never alias the stored data.
type MemoryStore struct {
	mu       sync.RWMutex
	students []models.Student
}

// NewMemoryStore builds a store pre-populated with the given roster. IDs of
// seeded records are kept; missing ones are assigned.
func NewMemoryStore(seed []models.Student) *MemoryStore {
	m := &MemoryStore{}
	for i := range seed {
		s := cloneStudent(&seed[i])
		if s.ID == 0 {
			s.ID = m.nextID()
		}
		m.students = append(m.students, *s)
	}
	return m
}

// nextID assigns max existing id + 1. Callers must hold the lock.
func (m *MemoryStore) nextID() uint {
	var max uint
	for i := range m.students {
		if m.students[i].ID > max {
			max = m.students[i].ID
		}
	}
	return max + 1
}

func cloneStudent(s *models.Student) *models.Student {
	out := *s
	out.PaymentHistory = s.PaymentHistory.Clone()
	return &out
}

func (m *MemoryStore) List(ctx context.Context) ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Student, 0, len(m.students))
	for i := range m.students {
		out = append(out, *cloneStudent(&m.students[i]))
	}
	return out, nil
}

func (m *MemoryStore) Get(ctx context.Context, id uint) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.students {
		if m.students[i].ID == id {
			return cloneStudent(&m.students[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindByCPF(ctx context.Context, cpf string) (*models.Student, error) {
	want := models.OnlyDigits(cpf)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.students {
		if models.OnlyDigits(m.students[i].ResponsibleCPF) == want {
			return cloneStudent(&m.students[i]), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Create(ctx context.Context, s *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextID()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	if s.PaymentHistory == nil {
		s.PaymentHistory = models.PaymentHistory{}
	}
	m.students = append(m.students, *cloneStudent(s))
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, s *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == s.ID {
			s.CreatedAt = m.students[i].CreatedAt
			s.UpdatedAt = time.Now()
			m.students[i] = *cloneStudent(s)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	// Deleting something already gone is not an error.
	return nil
}

func (m *MemoryStore) TogglePayment(ctx context.Context, id uint, year, monthIndex int, now time.Time) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == id {
			if _, err := billing.TogglePayment(&m.students[i], year, monthIndex, now); err != nil {
				return nil, err
			}
			m.students[i].UpdatedAt = time.Now()
			return cloneStudent(&m.students[i]), nil
		}
	}
	return nil, ErrNotFound
}
