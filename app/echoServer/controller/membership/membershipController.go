// app/echoServer/controller/membership/membershipController.go
package membership

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/respond"
	membershipsvc "librarydesk/service/membership"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc membershipsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/memberships  (admin)
func (h *Controller) Create(c echo.Context) error {
	var req CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing fields"})
	}
	m, err := h.Svc.Create(c.Request().Context(), membershipsvc.CreateInput{
		MembershipNo:   req.MembershipNo,
		UserID:         req.UserID,
		Name:           req.Name,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return respond.Error(c, h.Log, "membership create", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Membership added", "membership": m})
}

// PUT /api/memberships/:membership_no  (admin)
func (h *Controller) Update(c echo.Context) error {
	no := c.Param("membership_no")
	var req UpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "action required"})
	}
	m, err := h.Svc.Update(c.Request().Context(), no, req.Action, req.ExtendMonths)
	if err != nil {
		return respond.Error(c, h.Log, "membership update", err)
	}
	msg := "Membership extended"
	if req.Action == "cancel" {
		msg = "Membership canceled"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg, "membership": m})
}
