package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedant491/college-fees-api/internal/middleware"
	"github.com/Vedant491/college-fees-api/internal/service"
)

// Handlers bundles the API surface for route registration.
type Handlers struct {
	Auth      *AuthHandler
	Courses   *CourseHandler
	FeeLines  *FeeLineHandler
	Students  *StudentHandler
	Payments  *PaymentHandler
	Receipts  *ReceiptHandler
	Dashboard *DashboardHandler
}

// Register mounts all API routes under the configured prefix. Login is public;
// receipt lookup by number is public so a printed receipt can be verified
// without a session. Everything else requires an admin token.
func Register(r *gin.Engine, prefix string, auth *service.AuthService, h Handlers) {
	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)
	api.GET("/receipts/:number", h.Receipts.Get)
	api.GET("/receipts/:number/pdf", h.Receipts.GetPDF)

	protected := api.Group("")
	protected.Use(middleware.JWT(auth))

	protected.POST("/courses", h.Courses.Create)
	protected.GET("/courses", h.Courses.List)

	protected.POST("/fee-lines", h.FeeLines.Create)
	protected.GET("/fee-lines", h.FeeLines.List)

	protected.POST("/students", h.Students.Create)
	protected.GET("/students", h.Students.List)
	protected.GET("/students/:id", h.Students.Get)
	protected.GET("/students/:id/fee-lines", h.FeeLines.ListForStudent)

	protected.POST("/payments", h.Payments.Record)
	protected.GET("/payments", h.Payments.List)
	protected.GET("/payments/stats", h.Payments.Stats)
	protected.GET("/payments/export", h.Payments.Export)
	protected.POST("/payments/:id/receipt", h.Receipts.Issue)

	protected.GET("/dashboard", h.Dashboard.Get)
}
