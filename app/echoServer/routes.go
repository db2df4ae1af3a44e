package echoServer

import (
	"librarydesk/app/echoServer/controller/auth"
	"librarydesk/app/echoServer/controller/book"
	"librarydesk/app/echoServer/controller/loan"
	"librarydesk/app/echoServer/controller/membership"
	"librarydesk/app/echoServer/controller/report"
	"librarydesk/model"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth       *auth.Controller
	Book       *book.Controller
	Loan       *loan.Controller
	Membership *membership.Controller
	Report     *report.Controller
	JWTSecret  string
}

func Register(e *echo.Echo, c C) {
	api := e.Group("/api", RoleExtractor(c.JWTSecret))

	anyRole := RequireRole(model.RoleAdmin, model.RoleUser)
	adminOnly := RequireRole(model.RoleAdmin)

	// Public
	api.POST("/login", c.Auth.Login)
	api.GET("/books", c.Book.List)
	api.GET("/books/:id", c.Book.Detail)

	// Catalog (admin)
	api.POST("/books", c.Book.Create, adminOnly)
	api.PUT("/books/:id", c.Book.Update, adminOnly)
	api.POST("/books/search", c.Book.Search, anyRole)

	// Loan lifecycle
	api.POST("/issue", c.Loan.Issue, anyRole)
	api.POST("/return", c.Loan.Return, anyRole)
	api.POST("/payfine", c.Loan.PayFine, anyRole)

	// Memberships (admin)
	api.POST("/memberships", c.Membership.Create, adminOnly)
	api.PUT("/memberships/:membership_no", c.Membership.Update, adminOnly)

	// Users (admin)
	api.POST("/users", c.Auth.CreateUser, adminOnly)

	// Reports
	api.GET("/reports/active", c.Report.Active, anyRole)
	api.GET("/reports/overdue", c.Report.Overdue, anyRole)
}
