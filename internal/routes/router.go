package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/handlers"
	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/middleware"
)

// Handlers bundles every handler group the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Students  *handlers.StudentHandler
	Dashboard *handlers.DashboardHandler
	Portal    *handlers.PortalHandler
	Reports   *handlers.ReportHandler
	Logo      *handlers.LogoHandler
	Hub       *handlers.EventHub
}

// SetupRoutes registers every route of the application.
func SetupRoutes(r *gin.Engine, h Handlers) {
	// Public routes first: login endpoints need no token.
	RegisterAuthRoutes(r, h)

	// Everything below requires a valid session.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired, h)
	}
}
