package billing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// Stats carries the dashboard counters and revenue sums.
type Stats struct {
	TotalStudents  int     `json:"totalStudents"`
	PaidCount      int     `json:"paidCount"`
	PendingCount   int     `json:"pendingCount"`
	TotalRevenue   float64 `json:"totalRevenue"`
	PendingRevenue float64 `json:"pendingRevenue"`
}

// Summarize computes the aggregate counts over the whole roster. Confirmed
// revenue sums the fees of Paid students, pending revenue those of Pending
// students.
func Summarize(students []models.Student) Stats {
	st := Stats{TotalStudents: len(students)}
	for _, s := range students {
		if s.Status == models.StatusPaid {
			st.PaidCount++
			st.TotalRevenue += s.Fee
		} else {
			st.PendingCount++
			st.PendingRevenue += s.Fee
		}
	}
	return st
}

// Pending returns the students still owing the current cycle, sorted
// ascending by due date.
func Pending(students []models.Student) []models.Student {
	var out []models.Student
	for _, s := range students {
		if s.Status == models.StatusPending {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// OverdueAmong filters a pending list down to students whose stored due date
// has already passed. This is the coarse "who owes" check over the single
// stored date, not the per-month classification of ClassifyMonth: the end of
// the due day must be behind the start of today.
func OverdueAmong(pending []models.Student, now time.Time) []models.Student {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var out []models.Student
	for _, s := range pending {
		endOfDue := time.Date(s.DueDate.Year(), s.DueDate.Month(), s.DueDate.Day(), 23, 59, 59, 0, now.Location())
		if dayStart.After(endOfDue) {
			out = append(out, s)
		}
	}
	return out
}

// Search filters by case-insensitive substring over the name, the status
// label and the fee's two-decimal string form. An empty term matches all.
func Search(students []models.Student, term string) []models.Student {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return students
	}
	var out []models.Student
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(string(s.Status)), term) ||
			strings.Contains(strconv.FormatFloat(s.Fee, 'f', 2, 64), term) {
			out = append(out, s)
		}
	}
	return out
}

// FilterDueBetween keeps students whose stored due date falls inside the
// inclusive [from, to] range. Nil bounds are open ends; only the calendar
// day is compared.
func FilterDueBetween(students []models.Student, from, to *time.Time) []models.Student {
	if from == nil && to == nil {
		return students
	}
	var out []models.Student
	for _, s := range students {
		day := time.Date(s.DueDate.Year(), s.DueDate.Month(), s.DueDate.Day(), 0, 0, 0, 0, time.Local)
		if from != nil && day.Before(time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)) {
			continue
		}
		if to != nil && day.After(time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local)) {
			continue
		}
		out = append(out, s)
	}
	return out
}
