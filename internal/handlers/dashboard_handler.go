package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/billing"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/notify"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// DashboardHandler serves the read-only aggregations: counters, the pending
// list and the overdue reminders. Everything is recomputed per request.
type DashboardHandler struct {
	Store store.StudentStore
}

func NewDashboardHandler(st store.StudentStore) *DashboardHandler {
	return &DashboardHandler{Store: st}
}

// pendingEntry is a pending student annotated with the coarse overdue flag.
type pendingEntry struct {
	models.Student
	Overdue bool `json:"overdue"`
}

func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	students, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos."})
		return
	}
	c.JSON(http.StatusOK, billing.Summarize(students))
}

// PendingHandler lists everyone still owing, ordered by due date, each
// flagged overdue when the stored due date is behind today.
func (h *DashboardHandler) PendingHandler(c *gin.Context) {
	students, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos."})
		return
	}

	now := time.Now()
	pending := billing.Pending(students)
	overdue := billing.OverdueAmong(pending, now)
	overdueIDs := make(map[uint]bool, len(overdue))
	for _, s := range overdue {
		overdueIDs[s.ID] = true
	}

	entries := make([]pendingEntry, 0, len(pending))
	for _, s := range pending {
		entries = append(entries, pendingEntry{Student: s, Overdue: overdueIDs[s.ID]})
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *DashboardHandler) OverdueHandler(c *gin.Context) {
	students, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos."})
		return
	}

	overdue := billing.OverdueAmong(billing.Pending(students), time.Now())
	if overdue == nil {
		overdue = []models.Student{}
	}
	c.JSON(http.StatusOK, gin.H{"data": overdue, "count": len(overdue)})
}

// RemindersHandler returns one WhatsApp link per overdue student, ready for
// the dashboard's batch "send reminders" action.
func (h *DashboardHandler) RemindersHandler(c *gin.Context) {
	students, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos."})
		return
	}

	type reminder struct {
		StudentID uint   `json:"studentId"`
		Name      string `json:"name"`
		Link      string `json:"link"`
	}

	overdue := billing.OverdueAmong(billing.Pending(students), time.Now())
	reminders := make([]reminder, 0, len(overdue))
	for i := range overdue {
		s := &overdue[i]
		reminders = append(reminders, reminder{
			StudentID: s.ID,
			Name:      s.Name,
			Link:      notify.Link(s, notify.ReminderMessage(s)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": reminders})
}
