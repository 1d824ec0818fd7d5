package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/config"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/kv"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/middleware"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/report"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.InitAuth()
	RegisterValidators()
}

// testRoster mirrors a small slice of the production seed: one student per
// payment situation.
func testRoster() []models.Student {
	year := time.Now().Year()
	return []models.Student{
		{
			Model:          gorm.Model{ID: 1},
			Name:           "João Silva",
			Age:            25,
			Guardian:       "Próprio",
			ResponsibleCPF: "111.222.333-44",
			Phone:          "5511999998888",
			Fee:            150,
			Status:         models.StatusPending,
			DueDate:        time.Date(year, time.January, 5, 0, 0, 0, 0, time.Local),
			StartDate:      time.Date(year-1, time.January, 10, 0, 0, 0, 0, time.Local),
			PaymentHistory: models.PaymentHistory{},
		},
		{
			Model:          gorm.Model{ID: 2},
			Name:           "Maria Oliveira",
			Age:            17,
			Guardian:       "Pedro Oliveira",
			ResponsibleCPF: "55566677788",
			Phone:          "5511988887777",
			Fee:            120,
			Status:         models.StatusPaid,
			DueDate:        time.Date(year, time.January, 10, 0, 0, 0, 0, time.Local),
			StartDate:      time.Date(year-1, time.June, 1, 0, 0, 0, 0, time.Local),
			PaymentHistory: models.PaymentHistory{year: {0}},
		},
	}
}

type testEnv struct {
	router *gin.Engine
	store  *store.MemoryStore
	report *report.Service
}

// newTestEnv wires the handlers onto a fresh router exactly as the
// application router does, over a seeded in-memory roster.
func newTestEnv(summarizer report.Summarizer) *testEnv {
	st := store.NewMemoryStore(testRoster())
	svc := report.NewService(summarizer, st)

	auth := NewAuthHandler(st)
	studentsH := NewStudentHandler(st, nil)
	dashboard := NewDashboardHandler(st)
	portal := NewPortalHandler(st)
	reports := NewReportHandler(svc)
	logo := NewLogoHandler(kv.NewMemory())

	r := gin.New()
	r.POST("/login/admin", auth.AdminLoginHandler)
	r.POST("/login/student", auth.StudentLoginHandler)
	r.POST("/logout", auth.LogoutHandler)

	api := r.Group("/api", middleware.AuthMiddleware())
	{
		api.GET("/me", auth.MeHandler)

		adm := api.Group("/students", middleware.RequireAdmin())
		{
			adm.GET("", studentsH.ListStudentsHandler)
			adm.POST("", studentsH.CreateStudentHandler)
			adm.GET("/export", studentsH.ExportStudentsHandler)
			adm.GET("/:id", studentsH.GetStudentHandler)
			adm.PUT("/:id", studentsH.UpdateStudentHandler)
			adm.DELETE("/:id", studentsH.DeleteStudentHandler)
			adm.POST("/:id/payments/:year/:month", studentsH.TogglePaymentHandler)
			adm.GET("/:id/whatsapp-link", studentsH.WhatsAppLinkHandler)
		}

		dash := api.Group("/dashboard", middleware.RequireAdmin())
		{
			dash.GET("/stats", dashboard.StatsHandler)
			dash.GET("/pending", dashboard.PendingHandler)
			dash.GET("/overdue", dashboard.OverdueHandler)
			dash.GET("/reminders", dashboard.RemindersHandler)
		}

		rep := api.Group("/reports", middleware.RequireAdmin())
		{
			rep.POST("/summary", reports.GenerateReportHandler)
			rep.GET("/summary", reports.GetReportHandler)
		}

		api.GET("/logo", logo.GetLogoHandler)
		api.PUT("/logo", middleware.RequireAdmin(), logo.SetLogoHandler)

		api.GET("/portal/statement", portal.StatementHandler)
	}

	return &testEnv{router: r, store: st, report: svc}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// loginAdmin performs a real login and returns the session cookie.
func (e *testEnv) loginAdmin(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/login/admin", gin.H{"username": "admin", "password": "admin123"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", rec.Code, rec.Body.String())
	}
	return sessionCookie(t, rec)
}

func (e *testEnv) loginStudent(t *testing.T, cpf string) *http.Cookie {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/login/student", gin.H{"cpf": cpf}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("student login failed: %d %s", rec.Code, rec.Body.String())
	}
	return sessionCookie(t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return c
		}
	}
	t.Fatal("auth_token cookie not set")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}
