// Package membershiprepo owns the resident Membership collection, keyed
// by membership_no.
package membershiprepo

import (
	"context"
	"sync"

	"librarydesk/model"
	"librarydesk/store"
)

type Repo interface {
	ByNo(no string) (*model.Membership, bool)
	Insert(ctx context.Context, m model.Membership) error
	Update(ctx context.Context, m model.Membership) error
}

type repo struct {
	mu      sync.RWMutex
	st      store.Store
	members []model.Membership
}

func New(ctx context.Context, st store.Store) (Repo, error) {
	r := &repo{st: st}
	if err := st.Load(ctx, store.Memberships, &r.members); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repo) ByNo(no string) (*model.Membership, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.members {
		if r.members[i].MembershipNo == no {
			m := r.members[i]
			return &m, true
		}
	}
	return nil, false
}

func (r *repo) Insert(ctx context.Context, m model.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, m)
	return r.st.Save(ctx, store.Memberships, r.members)
}

func (r *repo) Update(ctx context.Context, m model.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].MembershipNo == m.MembershipNo {
			r.members[i] = m
			return r.st.Save(ctx, store.Memberships, r.members)
		}
	}
	return nil
}
