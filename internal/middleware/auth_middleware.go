package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/config"
)

// Context keys set for downstream handlers.
const (
	CtxRole      = "role"
	CtxStudentID = "studentID"
)

// Roles carried in the token.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// AuthMiddleware validates the auth_token cookie (or Bearer header) and puts
// the session role, plus the bound student id for student sessions, into the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				handleAuthError(c, "Sessão não encontrada. Faça login novamente.")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				handleAuthError(c, "Cabeçalho de autorização inválido.")
				return
			}
			tokenStr = parts[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Sessão inválida ou expirada.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			handleAuthError(c, "Sessão inválida.")
			return
		}

		role, _ := claims["role"].(string)
		if role != RoleAdmin && role != RoleStudent {
			handleAuthError(c, "Sessão inválida.")
			return
		}
		c.Set(CtxRole, role)

		if role == RoleStudent {
			idFloat, ok := claims["student_id"].(float64)
			if !ok {
				handleAuthError(c, "Sessão de aluno sem identificação.")
				return
			}
			c.Set(CtxStudentID, uint(idFloat))
		}

		c.Next()
	}
}

// RequireAdmin gates routes that only the administration may call.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso restrito à administração."})
			return
		}
		c.Next()
	}
}

func handleAuthError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
