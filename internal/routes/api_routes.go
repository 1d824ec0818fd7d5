package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/middleware"
)

// RegisterAPIRoutes registers every authenticated route under /api.
func RegisterAPIRoutes(api *gin.RouterGroup, h Handlers) {
	apiGroup := api.Group("/api")
	{
		apiGroup.GET("/me", h.Auth.MeHandler)

		// Student roster. Administration only.
		students := apiGroup.Group("/students")
		students.Use(middleware.RequireAdmin())
		{
			students.GET("", h.Students.ListStudentsHandler)
			students.POST("", h.Students.CreateStudentHandler)
			students.GET("/export", h.Students.ExportStudentsHandler)
			students.GET("/:id", h.Students.GetStudentHandler)
			students.PUT("/:id", h.Students.UpdateStudentHandler)
			students.DELETE("/:id", h.Students.DeleteStudentHandler)
			students.POST("/:id/payments/:year/:month", h.Students.TogglePaymentHandler)
			students.GET("/:id/whatsapp-link", h.Students.WhatsAppLinkHandler)
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(middleware.RequireAdmin())
		{
			dashboard.GET("/stats", h.Dashboard.StatsHandler)
			dashboard.GET("/pending", h.Dashboard.PendingHandler)
			dashboard.GET("/overdue", h.Dashboard.OverdueHandler)
			dashboard.GET("/reminders", h.Dashboard.RemindersHandler)
			dashboard.GET("/ws", h.Hub.ServeWS)
		}

		reports := apiGroup.Group("/reports")
		reports.Use(middleware.RequireAdmin())
		{
			reports.POST("/summary", h.Reports.GenerateReportHandler)
			reports.GET("/summary", h.Reports.GetReportHandler)
		}

		// The logo is readable by any logged-in user, writable by admins.
		apiGroup.GET("/logo", h.Logo.GetLogoHandler)
		apiGroup.PUT("/logo", middleware.RequireAdmin(), h.Logo.SetLogoHandler)

		// Student portal.
		portal := apiGroup.Group("/portal")
		{
			portal.GET("/statement", h.Portal.StatementHandler)
		}
	}
}
