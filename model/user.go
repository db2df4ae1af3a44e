// model/user.go
package model

// Roles accepted by the access guard.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	// Stored in the durable collection, never rendered by controllers.
	PasswordHash string `json:"password_hash,omitempty"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
