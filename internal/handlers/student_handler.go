package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/billing"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/notify"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// StudentHandler owns the roster CRUD and the per-month payment toggle.
type StudentHandler struct {
	Store store.StudentStore
	Hub   *EventHub
}

func NewStudentHandler(st store.StudentStore, hub *EventHub) *StudentHandler {
	return &StudentHandler{Store: st, Hub: hub}
}

// StudentInput is the add/edit form payload. Dates travel as AAAA-MM-DD.
type StudentInput struct {
	Name           string               `json:"name" binding:"required"`
	Age            int                  `json:"age" binding:"required,gt=0"`
	Guardian       string               `json:"guardian"`
	ResponsibleCPF string               `json:"responsibleCpf" binding:"required,cpf"`
	Phone          string               `json:"phone" binding:"required"`
	Fee            float64              `json:"fee" binding:"required,gt=0"`
	Status         models.PaymentStatus `json:"status" binding:"omitempty,oneof=Pago Pendente"`
	DueDate        string               `json:"dueDate" binding:"required,datetime=2006-01-02"`
	StartDate      string               `json:"startDate" binding:"required,datetime=2006-01-02"`
}

func (in *StudentInput) apply(s *models.Student) {
	s.Name = in.Name
	s.Age = in.Age
	s.Guardian = in.Guardian
	if s.Guardian == "" {
		s.Guardian = "Próprio"
	}
	s.ResponsibleCPF = in.ResponsibleCPF
	s.Phone = in.Phone
	s.Fee = in.Fee
	if in.Status != "" {
		s.Status = in.Status
	} else if s.Status == "" {
		s.Status = models.StatusPending
	}
	// Dates already passed the datetime binding; Parse cannot fail here.
	s.DueDate, _ = time.ParseInLocation("2006-01-02", in.DueDate, time.Local)
	s.StartDate, _ = time.ParseInLocation("2006-01-02", in.StartDate, time.Local)
}

// ListStudentsHandler returns the roster, filtered by search term, status
// and due-date range, paginated unless all=true.
func (h *StudentHandler) ListStudentsHandler(c *gin.Context) {
	students, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar os alunos."})
		return
	}

	students = billing.Search(students, c.Query("search"))

	if status := c.Query("status"); status != "" {
		var filtered []models.Student
		for _, s := range students {
			if string(s.Status) == status {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}

	from, ok := parseDateQuery(c, "due_from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "due_to")
	if !ok {
		return
	}
	students = billing.FilterDueBetween(students, from, to)

	if students == nil {
		students = []models.Student{}
	}

	if c.Query("all") == "true" {
		c.JSON(http.StatusOK, gin.H{"data": students})
		return
	}
	c.JSON(http.StatusOK, paginateStudents(c, students))
}

func (h *StudentHandler) GetStudentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar o aluno."})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) CreateStudentHandler(c *gin.Context) {
	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos.", "fields": bindingErrors(err)})
		return
	}

	var student models.Student
	input.apply(&student)
	student.PaymentHistory = models.PaymentHistory{}

	if err := h.Store.Create(c.Request.Context(), &student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível cadastrar o aluno."})
		return
	}

	h.Hub.Broadcast("student_created", student)
	c.JSON(http.StatusCreated, student)
}

// UpdateStudentHandler edits the descriptive fields. The id and the payment
// history are untouched by the form.
func (h *StudentHandler) UpdateStudentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar o aluno."})
		return
	}

	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos.", "fields": bindingErrors(err)})
		return
	}

	input.apply(student)
	if err := h.Store.Update(c.Request.Context(), student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível atualizar o aluno."})
		return
	}

	h.Hub.Broadcast("student_updated", student)
	c.JSON(http.StatusOK, student)
}

// DeleteStudentHandler removes a student. Deleting an id that is already
// gone still answers success; nothing else references students by id.
func (h *StudentHandler) DeleteStudentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível remover o aluno."})
		return
	}

	h.Hub.Broadcast("student_deleted", gin.H{"id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Aluno removido com sucesso."})
}

// TogglePaymentHandler flips one (year, month) cell of the student's
// history. The store refuses months before the start date.
func (h *StudentHandler) TogglePaymentHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ano inválido."})
		return
	}
	monthIndex, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mês inválido."})
		return
	}

	student, err := h.Store.TogglePayment(c.Request.Context(), id, year, monthIndex, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado."})
		case errors.Is(err, billing.ErrMonthOutOfRange), errors.Is(err, billing.ErrNotPayable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível registrar o pagamento."})
		}
		return
	}

	h.Hub.Broadcast("payment_toggled", student)
	c.JSON(http.StatusOK, student)
}

// WhatsAppLinkHandler builds the charge link for one student, with the
// sterner message when the stored due date has passed.
func (h *StudentHandler) WhatsAppLinkHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Aluno não encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar o aluno."})
		return
	}

	overdue := len(billing.OverdueAmong([]models.Student{*student}, time.Now())) > 0
	message := notify.ChargeMessage(student, overdue)
	c.JSON(http.StatusOK, gin.H{
		"link":    notify.Link(student, message),
		"message": message,
		"overdue": overdue,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de aluno inválido."})
		return 0, false
	}
	return uint(id), true
}

// parseDateQuery reads an optional AAAA-MM-DD query parameter. The second
// return is false when the request was already answered with a 400.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro " + name + " inválido (use AAAA-MM-DD)."})
		return nil, false
	}
	return &t, true
}
