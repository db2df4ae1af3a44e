// app/echoServer/controller/loan/loanController.go
package loan

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/respond"
	loansvc "librarydesk/service/loan"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc loansvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/issue
func (h *Controller) Issue(c echo.Context) error {
	var req IssueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "book_id, member_name, issue_date and return_date required"})
	}
	tr, err := h.Svc.Issue(c.Request().Context(), loansvc.IssueInput{
		BookID:     req.BookID,
		MemberName: req.MemberName,
		IssueDate:  req.IssueDate,
		ReturnDate: req.ReturnDate,
		Remarks:    req.Remarks,
	})
	if err != nil {
		return respond.Error(c, h.Log, "issue", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book issued", "transaction": tr})
}

// POST /api/return
func (h *Controller) Return(c echo.Context) error {
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "transaction_id, serial_no and return_date required"})
	}
	tr, err := h.Svc.Return(c.Request().Context(), req.TransactionID, req.SerialNo, req.ReturnDate)
	if err != nil {
		return respond.Error(c, h.Log, "return", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Return recorded", "transaction": tr})
}

// POST /api/payfine
func (h *Controller) PayFine(c echo.Context) error {
	var req PayFineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "transaction_id required"})
	}
	tr, err := h.Svc.PayFine(c.Request().Context(), req.TransactionID, req.FinePaid, req.Remarks)
	if err != nil {
		return respond.Error(c, h.Log, "payfine", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Fine processed", "transaction": tr})
}
