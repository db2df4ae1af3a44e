// Package authsvc verifies credentials and hands out role tokens. Only
// the seeded accounts carry passwords; users created through the API
// cannot log in until someone provisions a hash for them.
package authsvc

import (
	"context"

	"librarydesk/apperr"
	"librarydesk/model"
	"librarydesk/util/hash"
	jwtutil "librarydesk/util/jwt"
)

type Repo interface {
	ByUsername(username string) (*model.User, bool)
	Insert(ctx context.Context, u *model.User) error
}

type Service interface {
	// Login returns the user's role and a signed token carrying it.
	Login(ctx context.Context, username, password string) (role, token string, err error)
	CreateUser(ctx context.Context, username, name, role string) (*model.User, error)
}

type service struct {
	r      Repo
	secret string
}

func New(r Repo, secret string) Service { return &service{r: r, secret: secret} }

func (s *service) Login(_ context.Context, username, password string) (string, string, error) {
	if username == "" || password == "" {
		return "", "", apperr.New(apperr.Validation, "username and password required")
	}
	u, ok := s.r.ByUsername(username)
	if !ok || u.PasswordHash == "" || !hash.Check(u.PasswordHash, password) {
		return "", "", apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	token, err := jwtutil.Issue(s.secret, u.ID, u.Role, 24)
	if err != nil {
		return "", "", err
	}
	return u.Role, token, nil
}

func (s *service) CreateUser(ctx context.Context, username, name, role string) (*model.User, error) {
	if username == "" || name == "" || role == "" {
		return nil, apperr.New(apperr.Validation, "username, name and role required")
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return nil, apperr.New(apperr.Validation, "role must be admin or user")
	}
	if _, ok := s.r.ByUsername(username); ok {
		return nil, apperr.New(apperr.Validation, "username already exists")
	}
	u := model.User{Username: username, Name: name, Role: role}
	if err := s.r.Insert(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
