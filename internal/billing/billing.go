package billing

import (
	"errors"
	"sort"
	"time"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

var (
	// ErrMonthOutOfRange is returned for month indices outside 0-11.
	ErrMonthOutOfRange = errors.New("índice de mês inválido (esperado 0-11)")
	// ErrNotPayable is returned when a month before the student's start date
	// is toggled; those cells are never payable.
	ErrNotPayable = errors.New("mês anterior ao início do treino não é cobrável")
)

// MonthStatus classifies one (year, month) cell of a student's statement.
type MonthStatus int

const (
	NotApplicable MonthStatus = iota // before the student's start date
	Paid                            // present in the payment history
	Overdue                         // unpaid and past the due day
	Open                            // unpaid, not yet due
)

// Label returns the status as shown to users.
func (s MonthStatus) Label() string {
	switch s {
	case Paid:
		return string(models.StatusPaid)
	case Overdue:
		return "Atrasado"
	case Open:
		return "Aberto"
	default:
		return "-"
	}
}

// DueDateFor builds the recurring due date of a given month: the stored due
// date contributes only its day-of-month. The time is pinned to the end of
// the day so a payment only becomes overdue on the following calendar day.
// Day overflow (e.g. day 31 in February) normalizes into the next month,
// matching time.Date semantics.
func DueDateFor(s *models.Student, year, monthIndex int) time.Time {
	day := s.DueDate.Day()
	return time.Date(year, time.Month(monthIndex+1), day, 23, 59, 59, 0, time.Local)
}

// beforeStart reports whether (year, monthIndex) falls before the student's
// start month. The comparison is lexicographic on (year, month).
func beforeStart(s *models.Student, year, monthIndex int) bool {
	startYear := s.StartDate.Year()
	startMonth := int(s.StartDate.Month()) - 1
	return year < startYear || (year == startYear && monthIndex < startMonth)
}

// ClassifyMonth determines the status of one statement cell for a student.
// NotApplicable takes precedence over everything else, including history
// contents.
func ClassifyMonth(s *models.Student, year, monthIndex int, now time.Time) MonthStatus {
	if beforeStart(s, year, monthIndex) {
		return NotApplicable
	}
	if s.PaymentHistory.Contains(year, monthIndex) {
		return Paid
	}
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dayStart.After(DueDateFor(s, year, monthIndex)) {
		return Overdue
	}
	return Open
}

// TogglePayment flips the membership of monthIndex in the student's history
// for the given year, keeping the month set sorted ascending. Months before
// the start date are rejected rather than left to the caller.
//
// Only when the toggled cell is the current real-world (year, month) does the
// denormalized Status field follow the history; any other cell leaves it
// alone. That asymmetry is intentional: Status tracks the current cycle only.
func TogglePayment(s *models.Student, year, monthIndex int, now time.Time) (bool, error) {
	if monthIndex < 0 || monthIndex > 11 {
		return false, ErrMonthOutOfRange
	}
	if beforeStart(s, year, monthIndex) {
		return false, ErrNotPayable
	}

	if s.PaymentHistory == nil {
		s.PaymentHistory = models.PaymentHistory{}
	}

	paid := !s.PaymentHistory.Contains(year, monthIndex)
	if paid {
		months := append(s.PaymentHistory[year], monthIndex)
		sort.Ints(months)
		s.PaymentHistory[year] = months
	} else {
		months := s.PaymentHistory[year][:0]
		for _, m := range s.PaymentHistory[year] {
			if m != monthIndex {
				months = append(months, m)
			}
		}
		s.PaymentHistory[year] = months
	}

	if year == now.Year() && monthIndex == int(now.Month())-1 {
		if paid {
			s.Status = models.StatusPaid
		} else {
			s.Status = models.StatusPending
		}
	}
	return paid, nil
}

// AvailableYears lists the statement years offered for a student: from the
// start year through next year, ascending.
func AvailableYears(s *models.Student, now time.Time) []int {
	start := s.StartDate.Year()
	end := now.Year() + 1
	if start > end {
		start = end
	}
	years := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		years = append(years, y)
	}
	return years
}
