package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

func roster() []models.Student {
	return []models.Student{
		{
			Name:    "Maria Oliveira",
			Fee:     150.50,
			Status:  models.StatusPaid,
			DueDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local),
		},
		{
			Name:    "João Silva",
			Fee:     99.90,
			Status:  models.StatusPending,
			DueDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local),
		},
		{
			Name:    "Carlos Pereira",
			Fee:     120,
			Status:  models.StatusPending,
			DueDate: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local),
		},
	}
}

func TestSummarize(t *testing.T) {
	st := Summarize(roster())

	assert.Equal(t, 3, st.TotalStudents)
	assert.Equal(t, 1, st.PaidCount)
	assert.Equal(t, 2, st.PendingCount)
	assert.InDelta(t, 150.50, st.TotalRevenue, 0.01)
	assert.InDelta(t, 219.90, st.PendingRevenue, 0.01)
}

func TestSummarizeEmpty(t *testing.T) {
	st := Summarize(nil)
	assert.Equal(t, Stats{}, st)
}

func TestPendingSortedByDueDate(t *testing.T) {
	pending := Pending(roster())

	assert.Len(t, pending, 2)
	assert.Equal(t, "João Silva", pending[0].Name)
	assert.Equal(t, "Carlos Pereira", pending[1].Name)
}

func TestOverdueAmong(t *testing.T) {
	pending := Pending(roster())

	t.Run("due day itself is not overdue", func(t *testing.T) {
		now := time.Date(2024, time.March, 5, 23, 0, 0, 0, time.Local)
		assert.Empty(t, OverdueAmong(pending, now))
	})

	t.Run("next day it is", func(t *testing.T) {
		now := time.Date(2024, time.March, 6, 0, 30, 0, 0, time.Local)
		overdue := OverdueAmong(pending, now)
		assert.Len(t, overdue, 1)
		assert.Equal(t, "João Silva", overdue[0].Name)
	})

	t.Run("well past both dates", func(t *testing.T) {
		now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
		assert.Len(t, OverdueAmong(pending, now), 2)
	})
}

func TestSearch(t *testing.T) {
	students := roster()

	t.Run("by name fragment", func(t *testing.T) {
		out := Search(students, "mar")
		assert.Len(t, out, 1)
		assert.Equal(t, "Maria Oliveira", out[0].Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Len(t, Search(students, "JOÃO"), 1)
	})

	t.Run("by status label", func(t *testing.T) {
		assert.Len(t, Search(students, "pendente"), 2)
	})

	t.Run("by fee string", func(t *testing.T) {
		out := Search(students, "99.90")
		assert.Len(t, out, 1)
		assert.Equal(t, "João Silva", out[0].Name)
	})

	t.Run("empty term matches all", func(t *testing.T) {
		assert.Len(t, Search(students, "  "), 3)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Search(students, "inexistente"))
	})
}

func TestFilterDueBetween(t *testing.T) {
	students := roster()
	day := func(d int) *time.Time {
		t := time.Date(2024, time.March, d, 15, 45, 0, 0, time.Local)
		return &t
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		out := FilterDueBetween(students, day(5), day(10))
		assert.Len(t, out, 2)
	})

	t.Run("open lower bound", func(t *testing.T) {
		out := FilterDueBetween(students, nil, day(9))
		assert.Len(t, out, 1)
		assert.Equal(t, "João Silva", out[0].Name)
	})

	t.Run("open upper bound", func(t *testing.T) {
		out := FilterDueBetween(students, day(11), nil)
		assert.Len(t, out, 1)
		assert.Equal(t, "Carlos Pereira", out[0].Name)
	})

	t.Run("no bounds returns everyone", func(t *testing.T) {
		assert.Len(t, FilterDueBetween(students, nil, nil), 3)
	})
}

func TestStatement(t *testing.T) {
	s := newStudent(5, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.Local))
	s.PaymentHistory = models.PaymentHistory{2024: {2}}
	now := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.Local)

	entries := Statement(s, 2024, now)
	assert.Len(t, entries, 12)

	jan := entries[0]
	assert.Equal(t, "Janeiro", jan.Month)
	assert.Equal(t, "-", jan.Status)
	assert.False(t, jan.Payable)
	assert.Zero(t, jan.Fee)
	assert.Empty(t, jan.DueDate)

	fev := entries[1]
	assert.Equal(t, "Atrasado", fev.Status)
	assert.True(t, fev.Payable)
	assert.Equal(t, "05/02/2024", fev.DueDate)
	assert.Equal(t, s.Fee, fev.Fee)

	mar := entries[2]
	assert.Equal(t, "Pago", mar.Status)
	assert.False(t, mar.Payable)

	mai := entries[4]
	assert.Equal(t, "Aberto", mai.Status)
	assert.True(t, mai.Payable)
}
