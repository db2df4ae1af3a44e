// Package userrepo owns the resident User collection and seeds the two
// default accounts when the store is empty.
package userrepo

import (
	"context"
	"sync"

	"librarydesk/model"
	"librarydesk/store"
	"librarydesk/util/hash"
)

type Repo interface {
	ByUsername(username string) (*model.User, bool)
	Insert(ctx context.Context, u *model.User) error
}

type repo struct {
	mu    sync.RWMutex
	st    store.Store
	users []model.User
}

func New(ctx context.Context, st store.Store) (Repo, error) {
	r := &repo{st: st}
	if err := st.Load(ctx, store.Users, &r.users); err != nil {
		return nil, err
	}
	if len(r.users) == 0 {
		if err := r.seedDefaults(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// seedDefaults installs the stub credential pairs admin/admin and
// user/user. Real deployments must replace these.
func (r *repo) seedDefaults(ctx context.Context) error {
	adminHash, err := hash.HashPassword("admin")
	if err != nil {
		return err
	}
	userHash, err := hash.HashPassword("user")
	if err != nil {
		return err
	}
	r.users = []model.User{
		{ID: 1, Username: "admin", Name: "Administrator", Role: model.RoleAdmin, PasswordHash: adminHash},
		{ID: 2, Username: "user", Name: "Standard User", Role: model.RoleUser, PasswordHash: userHash},
	}
	return r.st.Save(ctx, store.Users, r.users)
}

func (r *repo) ByUsername(username string) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, true
		}
	}
	return nil, false
}

func (r *repo) Insert(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.users {
		if r.users[i].ID > max {
			max = r.users[i].ID
		}
	}
	u.ID = max + 1
	r.users = append(r.users, *u)
	return r.st.Save(ctx, store.Users, r.users)
}
