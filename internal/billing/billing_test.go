package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

func newStudent(dueDay int, start time.Time) *models.Student {
	return &models.Student{
		Name:           "Aluno Teste",
		Fee:            150,
		Status:         models.StatusPending,
		DueDate:        time.Date(2024, time.January, dueDay, 0, 0, 0, 0, time.Local),
		StartDate:      start,
		PaymentHistory: models.PaymentHistory{},
	}
}

func TestClassifyMonth(t *testing.T) {
	s := newStudent(5, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local))
	now := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.Local)

	t.Run("before start is not applicable", func(t *testing.T) {
		assert.Equal(t, NotApplicable, ClassifyMonth(s, 2023, 11, now))
	})

	t.Run("not applicable even when history has the month", func(t *testing.T) {
		withHist := newStudent(5, s.StartDate)
		withHist.PaymentHistory = models.PaymentHistory{2023: {11}}
		assert.Equal(t, NotApplicable, ClassifyMonth(withHist, 2023, 11, now))
	})

	t.Run("start month is payable", func(t *testing.T) {
		assert.NotEqual(t, NotApplicable, ClassifyMonth(s, 2024, 0, now))
	})

	t.Run("unpaid past due day is overdue", func(t *testing.T) {
		assert.Equal(t, Overdue, ClassifyMonth(s, 2024, 1, now))
	})

	t.Run("paid month wins over overdue", func(t *testing.T) {
		paid := newStudent(5, s.StartDate)
		paid.PaymentHistory = models.PaymentHistory{2024: {1}}
		assert.Equal(t, Paid, ClassifyMonth(paid, 2024, 1, now))
	})

	t.Run("current month before due end of day is open", func(t *testing.T) {
		onDueDay := time.Date(2024, time.March, 5, 18, 0, 0, 0, time.Local)
		assert.Equal(t, Open, ClassifyMonth(s, 2024, 2, onDueDay))
	})

	t.Run("overdue only from the following day", func(t *testing.T) {
		dayAfter := time.Date(2024, time.March, 6, 0, 0, 1, 0, time.Local)
		assert.Equal(t, Overdue, ClassifyMonth(s, 2024, 2, dayAfter))
	})

	t.Run("future month is open", func(t *testing.T) {
		assert.Equal(t, Open, ClassifyMonth(s, 2024, 10, now))
	})
}

func TestDueDateForDayOverflow(t *testing.T) {
	s := newStudent(31, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local))
	// Day 31 in February normalizes forward, same as the date constructor.
	due := DueDateFor(s, 2023, 1)
	assert.Equal(t, time.March, due.Month())
	assert.Equal(t, 3, due.Day())
}

func TestTogglePayment(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)

	t.Run("toggle twice restores the original history", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local))

		paid, err := TogglePayment(s, 2024, 1, now)
		assert.NoError(t, err)
		assert.True(t, paid)
		assert.True(t, s.PaymentHistory.Contains(2024, 1))

		paid, err = TogglePayment(s, 2024, 1, now)
		assert.NoError(t, err)
		assert.False(t, paid)
		assert.False(t, s.PaymentHistory.Contains(2024, 1))
		assert.Empty(t, s.PaymentHistory[2024])
	})

	t.Run("months stay sorted", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local))
		for _, m := range []int{5, 1, 3} {
			_, err := TogglePayment(s, 2024, m, now)
			assert.NoError(t, err)
		}
		assert.Equal(t, []int{1, 3, 5}, s.PaymentHistory[2024])
	})

	t.Run("current month updates the status flag", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local))

		_, err := TogglePayment(s, 2024, 2, now)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPaid, s.Status)

		_, err = TogglePayment(s, 2024, 2, now)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, s.Status)
	})

	t.Run("other months leave the status flag alone", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local))
		s.Status = models.StatusPaid

		_, err := TogglePayment(s, 2024, 0, now)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPaid, s.Status)
	})

	t.Run("month before start is rejected", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local))
		_, err := TogglePayment(s, 2024, 0, now)
		assert.ErrorIs(t, err, ErrNotPayable)
		assert.False(t, s.PaymentHistory.Contains(2024, 0))
	})

	t.Run("month index out of range is rejected", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
		_, err := TogglePayment(s, 2024, 12, now)
		assert.ErrorIs(t, err, ErrMonthOutOfRange)
		_, err = TogglePayment(s, 2024, -1, now)
		assert.ErrorIs(t, err, ErrMonthOutOfRange)
	})

	t.Run("nil history is initialized", func(t *testing.T) {
		s := newStudent(5, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
		s.PaymentHistory = nil
		paid, err := TogglePayment(s, 2024, 0, now)
		assert.NoError(t, err)
		assert.True(t, paid)
		assert.True(t, s.PaymentHistory.Contains(2024, 0))
	})
}

func TestAvailableYears(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)

	s := newStudent(5, time.Date(2022, time.March, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, []int{2022, 2023, 2024, 2025}, AvailableYears(s, now))

	future := newStudent(5, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, []int{2025}, AvailableYears(future, now))
}
