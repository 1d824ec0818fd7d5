package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/billing"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// GormStore persists the roster in Postgres. Payment history lives in a
// jsonb column; ids come from the database sequence.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the students table and wraps the connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Student{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := g.db.WithContext(ctx).Order("id asc").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (g *GormStore) Get(ctx context.Context, id uint) (*models.Student, error) {
	var s models.Student
	if err := g.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByCPF scans the roster in insertion order and compares digits-only in
// Go; the roster is small and the stored CPF may carry formatting.
func (g *GormStore) FindByCPF(ctx context.Context, cpf string) (*models.Student, error) {
	want := models.OnlyDigits(cpf)
	students, err := g.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if models.OnlyDigits(students[i].ResponsibleCPF) == want {
			return &students[i], nil
		}
	}
	return nil, ErrNotFound
}

func (g *GormStore) Create(ctx context.Context, s *models.Student) error {
	if s.PaymentHistory == nil {
		s.PaymentHistory = models.PaymentHistory{}
	}
	return g.db.WithContext(ctx).Create(s).Error
}

func (g *GormStore) Update(ctx context.Context, s *models.Student) error {
	res := g.db.WithContext(ctx).Save(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormStore) Delete(ctx context.Context, id uint) error {
	// Soft delete; zero rows affected means it was already gone, which is fine.
	return g.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}

func (g *GormStore) TogglePayment(ctx context.Context, id uint, year, monthIndex int, now time.Time) (*models.Student, error) {
	var updated *models.Student
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s models.Student
		if err := tx.First(&s, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if _, err := billing.TogglePayment(&s, year, monthIndex, now); err != nil {
			return err
		}
		if err := tx.Save(&s).Error; err != nil {
			return err
		}
		updated = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
