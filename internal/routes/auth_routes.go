package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication routes. These do not
// go through the token middleware.
func RegisterAuthRoutes(r *gin.Engine, h Handlers) {
	r.POST("/login/admin", h.Auth.AdminLoginHandler)
	r.POST("/login/student", h.Auth.StudentLoginHandler)
	r.POST("/logout", h.Auth.LogoutHandler)
}
