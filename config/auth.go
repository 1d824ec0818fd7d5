package config

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// JwtKey signs the auth_token cookies.
var JwtKey []byte

// adminCredential is one entry of the administrator allow-list. Passwords
// are hashed at load time so the plaintext never sticks around.
type adminCredential struct {
	username string
	hash     []byte
}

var adminUsers []adminCredential

// InitAuth loads the JWT secret and the administrator allow-list.
//
// ADMIN_USERS is a comma-separated list of user:password pairs. The default
// matches the secretary's well-known credentials; a real deployment is
// expected to override both variables.
func InitAuth() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "ct-leandro-nascimento-dev"
		slog.Warn("JWT_SECRET não definido, usando chave de desenvolvimento.")
	}
	JwtKey = []byte(secret)

	raw := os.Getenv("ADMIN_USERS")
	if raw == "" {
		raw = "admin:admin123"
		slog.Warn("ADMIN_USERS não definido, usando credenciais padrão de desenvolvimento.")
	}

	adminUsers = nil
	for _, pair := range strings.Split(raw, ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || user == "" || pass == "" {
			slog.Warn("Entrada inválida em ADMIN_USERS ignorada", "entry", pair)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("Falha ao processar credencial de administrador", "user", user, "error", err)
			continue
		}
		adminUsers = append(adminUsers, adminCredential{username: user, hash: hash})
	}
}

// CheckAdminCredentials reports whether the pair matches the allow-list.
func CheckAdminCredentials(username, password string) bool {
	for _, cred := range adminUsers {
		if cred.username == username &&
			bcrypt.CompareHashAndPassword(cred.hash, []byte(password)) == nil {
			return true
		}
	}
	return false
}
