package billing

import (
	"time"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// MonthNames are the statement row labels, indexed 0-11.
var MonthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// StatementEntry is one row of a student's yearly statement.
type StatementEntry struct {
	MonthIndex int     `json:"monthIndex"`
	Month      string  `json:"month"`
	DueDate    string  `json:"dueDate,omitempty"` // dd/mm/yyyy; empty when not applicable
	Fee        float64 `json:"fee"`
	Status     string  `json:"status"`
	Payable    bool    `json:"payable"` // selectable in the portal: overdue or open
}

// Statement classifies the twelve months of a year for one student.
func Statement(s *models.Student, year int, now time.Time) []StatementEntry {
	entries := make([]StatementEntry, 0, 12)
	for m := 0; m < 12; m++ {
		status := ClassifyMonth(s, year, m, now)
		e := StatementEntry{
			MonthIndex: m,
			Month:      MonthNames[m],
			Status:     status.Label(),
			Payable:    status == Overdue || status == Open,
		}
		if status != NotApplicable {
			e.Fee = s.Fee
			e.DueDate = DueDateFor(s, year, m).Format("02/01/2006")
		}
		entries = append(entries, e)
	}
	return entries
}
