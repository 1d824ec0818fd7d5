package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// SeedStudents returns the academy's current roster, shifted so that dates
// stay relative to the present year and classifications keep making sense.
func SeedStudents() []models.Student {
	year := time.Now().Year()
	last := year - 1

	date := func(y int, monthIndex, day int) time.Time {
		return time.Date(y, time.Month(monthIndex+1), day, 0, 0, 0, 0, time.Local)
	}

	return []models.Student{
		{
			Model: gorm.Model{ID: 1}, Name: "João Silva", Age: 28, Guardian: "Próprio",
			ResponsibleCPF: "12345678901", Phone: "5511999998888", Fee: 150.00,
			Status: models.StatusPaid, DueDate: date(year, 0, 5), StartDate: date(last, 0, 15),
			PaymentHistory: models.PaymentHistory{year: {0, 1, 2, 3}, last: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		},
		{
			Model: gorm.Model{ID: 2}, Name: "Maria Oliveira", Age: 22, Guardian: "Próprio",
			ResponsibleCPF: "12345678902", Phone: "5522935000824", Fee: 150.00,
			Status: models.StatusPending, DueDate: date(year, 0, 5), StartDate: date(last, 5, 1),
			PaymentHistory: models.PaymentHistory{last: {5, 6, 7, 8, 9, 10, 11}, year: {}},
		},
		{
			Model: gorm.Model{ID: 3}, Name: "Carlos Pereira", Age: 35, Guardian: "Próprio",
			ResponsibleCPF: "12345678903", Phone: "5531977776666", Fee: 150.00,
			Status: models.StatusPaid, DueDate: date(year, 1, 5), StartDate: date(year, 1, 1),
			PaymentHistory: models.PaymentHistory{year: {1}},
		},
		{
			Model: gorm.Model{ID: 4}, Name: "Ana Costa", Age: 16, Guardian: "Ricardo Costa",
			ResponsibleCPF: "12345678904", Phone: "5541966665555", Fee: 120.00,
			Status: models.StatusPaid, DueDate: date(year, 1, 10), StartDate: date(year, 0, 10),
			PaymentHistory: models.PaymentHistory{year: {0, 1}},
		},
		{
			Model: gorm.Model{ID: 5}, Name: "Lucas Martins", Age: 19, Guardian: "Próprio",
			ResponsibleCPF: "12345678905", Phone: "5551955554444", Fee: 150.00,
			Status: models.StatusPending, DueDate: date(year, 2, 2), StartDate: date(last, 10, 20),
			PaymentHistory: models.PaymentHistory{last: {10, 11}, year: {0, 1}},
		},
		{
			Model: gorm.Model{ID: 6}, Name: "Juliana Almeida", Age: 25, Guardian: "Próprio",
			ResponsibleCPF: "12345678906", Phone: "5561944443333", Fee: 150.00,
			Status: models.StatusPaid, DueDate: date(year, 2, 10), StartDate: date(year, 2, 1),
			PaymentHistory: models.PaymentHistory{year: {2}},
		},
		{
			Model: gorm.Model{ID: 7}, Name: "Fernando Lima", Age: 14, Guardian: "Marcos Lima",
			ResponsibleCPF: "12345678907", Phone: "5521911112222", Fee: 120.00,
			Status: models.StatusPaid, DueDate: date(year, 3, 5), StartDate: date(year, 3, 1),
			PaymentHistory: models.PaymentHistory{year: {3}},
		},
	}
}
