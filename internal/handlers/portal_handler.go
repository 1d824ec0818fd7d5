package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/billing"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/middleware"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/notify"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// PortalHandler serves the student-facing view: the yearly statement and
// the due-date notice for the logged-in student.
type PortalHandler struct {
	Store store.StudentStore
}

func NewPortalHandler(st store.StudentStore) *PortalHandler {
	return &PortalHandler{Store: st}
}

// StatementHandler classifies the twelve months of the requested year
// (default: the current one) for the student bound to the session.
func (h *PortalHandler) StatementHandler(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != middleware.RoleStudent {
		c.JSON(http.StatusForbidden, gin.H{"error": "Disponível apenas para alunos."})
		return
	}

	student, err := h.Store.Get(c.Request.Context(), c.GetUint(middleware.CtxStudentID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Cadastro não encontrado. Faça login novamente."})
		return
	}

	now := time.Now()
	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ano inválido."})
			return
		}
		year = y
	}

	resp := gin.H{
		"student":   student,
		"year":      year,
		"years":     billing.AvailableYears(student, now),
		"statement": billing.Statement(student, year, now),
	}
	if notice := dueNotice(student, now); notice != nil {
		resp["notice"] = notice
	}
	c.JSON(http.StatusOK, resp)
}

// dueNotice mirrors the portal's reminder card: it only shows up in the
// five days before the stored due date (inclusive of the day itself).
func dueNotice(s *models.Student, now time.Time) gin.H {
	daysLeft := int(time.Date(s.DueDate.Year(), s.DueDate.Month(), s.DueDate.Day(), 0, 0, 0, 0, now.Location()).
		Sub(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())).Hours() / 24)
	if daysLeft < 0 || daysLeft > 5 {
		return nil
	}

	message := "Olá " + s.Name + ", sua mensalidade de R$" + strconv.FormatFloat(s.Fee, 'f', 2, 64) +
		" vence em " + s.DueDate.Format("02/01/2006") +
		". Para evitar interrupções no seu treino, por favor, realize o pagamento."
	return gin.H{
		"daysLeft":     daysLeft,
		"message":      message,
		"whatsappLink": notify.Link(s, message),
	}
}
