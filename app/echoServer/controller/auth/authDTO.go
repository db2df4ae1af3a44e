package auth

type CreateUserReq struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}
