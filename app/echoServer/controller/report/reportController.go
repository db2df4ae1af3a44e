// app/echoServer/controller/report/reportController.go
package report

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/respond"
	"librarydesk/model"
	reportsvc "librarydesk/service/report"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc reportsvc.Service
	Log *slog.Logger
}

// GET /api/reports/active
func (h *Controller) Active(c echo.Context) error {
	rows, err := h.Svc.ActiveLoans(c.Request().Context())
	if err != nil {
		return respond.Error(c, h.Log, "active report", err)
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/reports/overdue
func (h *Controller) Overdue(c echo.Context) error {
	rows, err := h.Svc.OverdueLoans(c.Request().Context())
	if err != nil {
		return respond.Error(c, h.Log, "overdue report", err)
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	return c.JSON(http.StatusOK, rows)
}
