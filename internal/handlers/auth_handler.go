package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/config"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/middleware"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/store"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/models"
)

// AuthHandler implements the role gate: admin allow-list on one side, CPF
// lookup on the other. Sessions are a signed cookie; logging out just drops it.
type AuthHandler struct {
	Students store.StudentStore
}

func NewAuthHandler(students store.StudentStore) *AuthHandler {
	return &AuthHandler{Students: students}
}

type adminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type studentLoginInput struct {
	CPF string `json:"cpf" binding:"required"`
}

const sessionTTL = 24 * time.Hour

// AdminLoginHandler checks the submitted pair against the configured
// allow-list. There is no lockout and no rate limiting; failure is just an
// inline message.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	var input adminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe usuário e senha.", "fields": bindingErrors(err)})
		return
	}

	if !config.CheckAdminCredentials(input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário ou senha administrativos inválidos."})
		return
	}

	if err := h.issueSession(c, middleware.RoleAdmin, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível iniciar a sessão."})
		return
	}
	slog.Info("Login administrativo", "user", input.Username)
	c.JSON(http.StatusOK, gin.H{"role": middleware.RoleAdmin})
}

// StudentLoginHandler normalizes the CPF to digits, requires exactly 11 of
// them, and binds the session to the first student whose responsible CPF
// matches.
func (h *AuthHandler) StudentLoginHandler(c *gin.Context) {
	var input studentLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe o CPF do responsável.", "fields": bindingErrors(err)})
		return
	}

	digits := models.OnlyDigits(input.CPF)
	if len(digits) != 11 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Por favor, insira um CPF válido com 11 dígitos."})
		return
	}

	student, err := h.Students.FindByCPF(c.Request.Context(), digits)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "CPF não encontrado ou não cadastrado como responsável."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao consultar alunos."})
		return
	}

	if err := h.issueSession(c, middleware.RoleStudent, student.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível iniciar a sessão."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": middleware.RoleStudent, "student": student})
}

// LogoutHandler clears the session cookie unconditionally.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada."})
}

// MeHandler reports the current role and, for students, the bound record.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	role := c.GetString(middleware.CtxRole)
	if role != middleware.RoleStudent {
		c.JSON(http.StatusOK, gin.H{"role": role})
		return
	}

	student, err := h.Students.Get(c.Request.Context(), c.GetUint(middleware.CtxStudentID))
	if err != nil {
		// The record was removed while the session was alive.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Cadastro não encontrado. Faça login novamente."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "student": student})
}

func (h *AuthHandler) issueSession(c *gin.Context, role string, studentID uint) error {
	claims := jwt.MapClaims{
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	if role == middleware.RoleStudent {
		claims["student_id"] = studentID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JwtKey)
	if err != nil {
		return err
	}
	c.SetCookie("auth_token", token, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}
