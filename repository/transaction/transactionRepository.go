// Package txrepo owns the resident Transaction collection. Transactions
// are append-and-update only, never deleted.
package txrepo

import (
	"context"
	"sync"

	"librarydesk/model"
	"librarydesk/store"
)

type Repo interface {
	All() []model.Transaction
	ByID(id int64) (*model.Transaction, bool)
	Insert(ctx context.Context, t *model.Transaction) error
	Update(ctx context.Context, t model.Transaction) error
}

type repo struct {
	mu  sync.RWMutex
	st  store.Store
	txs []model.Transaction
}

func New(ctx context.Context, st store.Store) (Repo, error) {
	r := &repo{st: st}
	if err := st.Load(ctx, store.Transactions, &r.txs); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repo) All() []model.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Transaction, len(r.txs))
	copy(out, r.txs)
	return out
}

func (r *repo) ByID(id int64) (*model.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.txs {
		if r.txs[i].ID == id {
			t := r.txs[i]
			return &t, true
		}
	}
	return nil, false
}

func (r *repo) Insert(ctx context.Context, t *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max int64
	for i := range r.txs {
		if r.txs[i].ID > max {
			max = r.txs[i].ID
		}
	}
	t.ID = max + 1
	r.txs = append(r.txs, *t)
	return r.st.Save(ctx, store.Transactions, r.txs)
}

func (r *repo) Update(ctx context.Context, t model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.txs {
		if r.txs[i].ID == t.ID {
			r.txs[i] = t
			return r.st.Save(ctx, store.Transactions, r.txs)
		}
	}
	return nil
}
