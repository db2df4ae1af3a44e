package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"librarydesk/app/echoServer/respond"
	"librarydesk/model"
	catalogsvc "librarydesk/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, h.Log, "book list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/books/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, h.Log, "book detail", err)
	}
	return c.JSON(http.StatusOK, row)
}

// POST /api/books  (admin)
func (h *Controller) Create(c echo.Context) error {
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields"})
	}
	b, err := h.Svc.Add(c.Request().Context(), catalogsvc.Input{
		Title:     req.Title,
		Author:    req.Author,
		Category:  req.Category,
		SerialNo:  req.SerialNo,
		Available: req.Available,
	})
	if err != nil {
		return respond.Error(c, h.Log, "book create", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book added", "book": b})
}

// PUT /api/books/:id  (admin)
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req BookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing required fields"})
	}
	b, err := h.Svc.Update(c.Request().Context(), id, catalogsvc.Input{
		Title:     req.Title,
		Author:    req.Author,
		Category:  req.Category,
		SerialNo:  req.SerialNo,
		Available: req.Available,
	})
	if err != nil {
		return respond.Error(c, h.Log, "book update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book updated", "book": b})
}

// POST /api/books/search  (admin|user)
func (h *Controller) Search(c echo.Context) error {
	var req SearchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	rows, err := h.Svc.Search(c.Request().Context(), catalogsvc.SearchFilters{
		Title:    req.Title,
		Author:   req.Author,
		Category: req.Category,
	})
	if err != nil {
		return respond.Error(c, h.Log, "book search", err)
	}
	if rows == nil {
		rows = []model.Book{}
	}
	return c.JSON(http.StatusOK, rows)
}
