package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
)

// PaymentStatus is the coarse current-cycle flag shown on the dashboard.
// It is deliberately distinct from the per-month payment history: toggling
// any month other than the current one never touches it.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Pago"
	StatusPending PaymentStatus = "Pendente"
)

// PaymentHistory maps a year to the paid month indices (0-11) of that year.
// Month slices are kept sorted ascending; membership is checked before any
// mutation so duplicates cannot occur.
type PaymentHistory map[int][]int

// Contains reports whether monthIndex is recorded as paid for year.
func (h PaymentHistory) Contains(year, monthIndex int) bool {
	for _, m := range h[year] {
		if m == monthIndex {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand out history without
// exposing the stored slices.
func (h PaymentHistory) Clone() PaymentHistory {
	if h == nil {
		return PaymentHistory{}
	}
	out := make(PaymentHistory, len(h))
	for year, months := range h {
		out[year] = append([]int(nil), months...)
	}
	return out
}

// Value serializes the history to JSON for the jsonb column.
func (h PaymentHistory) Value() (driver.Value, error) {
	if h == nil {
		return "{}", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the jsonb column back into the map.
func (h *PaymentHistory) Scan(value interface{}) error {
	if value == nil {
		*h = PaymentHistory{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for PaymentHistory", value)
	}
	if len(b) == 0 {
		*h = PaymentHistory{}
		return nil
	}
	return json.Unmarshal(b, h)
}

// Student is the single entity of the system: one academy member with their
// monthly fee, billing dates and per-month payment record.
type Student struct {
	gorm.Model
	Name           string         `json:"name" gorm:"not null"`
	Age            int            `json:"age"`
	Guardian       string         `json:"guardian"`
	ResponsibleCPF string         `json:"responsibleCpf" gorm:"index"` // login key, stored as typed by the admin
	Phone          string         `json:"phone"`                      // digits with country/area code, e.g. 5511999998888
	Fee            float64        `json:"fee" gorm:"type:numeric(10,2)"`
	Status         PaymentStatus  `json:"status" gorm:"type:varchar(16);default:'Pendente'"`
	DueDate        time.Time      `json:"dueDate"`   // day-of-month is the recurring billing day
	StartDate      time.Time      `json:"startDate"` // months before this are not payable
	PaymentHistory PaymentHistory `json:"paymentHistory" gorm:"type:jsonb"`
}

// FirstName returns the leading name component, used in message templates.
func (s *Student) FirstName() string {
	if i := strings.IndexByte(s.Name, ' '); i > 0 {
		return s.Name[:i]
	}
	return s.Name
}

// OnlyDigits strips everything that is not a decimal digit. CPF and phone
// comparisons always happen on this normalized form.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
