// app/echoServer/controller/auth/authController.go
package auth

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/respond"
	"librarydesk/model"
	authsvc "librarydesk/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Login
// @Summary      Login
// @Description  Login with username + password, returns the role and a JWT role token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /api/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password required"})
	}

	role, token, err := ct.Svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respond.Error(c, ct.Log, "login", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"role": role, "token": token})
}

// CreateUser handles POST /api/users (admin).
func (ct *Controller) CreateUser(c echo.Context) error {
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username, name and role required"})
	}

	u, err := ct.Svc.CreateUser(c.Request().Context(), req.Username, req.Name, req.Role)
	if err != nil {
		return respond.Error(c, ct.Log, "create user", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User created", "user": sanitize(u)})
}

func sanitize(u *model.User) model.User {
	out := *u
	out.PasswordHash = ""
	return out
}
