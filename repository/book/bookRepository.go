// Package bookrepo owns the resident Book collection: loaded from the
// record store at startup, flushed whole on every mutation.
package bookrepo

import (
	"context"
	"sync"

	"librarydesk/model"
	"librarydesk/store"
)

type Repo interface {
	All() []model.Book
	ByID(id int64) (*model.Book, bool)
	Insert(ctx context.Context, b *model.Book) error
	Replace(ctx context.Context, b model.Book) (*model.Book, error)
	SetAvailable(ctx context.Context, id int64, available bool) error
}

type repo struct {
	mu    sync.RWMutex
	st    store.Store
	books []model.Book
}

func New(ctx context.Context, st store.Store) (Repo, error) {
	r := &repo{st: st}
	if err := st.Load(ctx, store.Books, &r.books); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repo) All() []model.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Book, len(r.books))
	copy(out, r.books)
	return out
}

func (r *repo) ByID(id int64) (*model.Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.books {
		if r.books[i].ID == id {
			b := r.books[i]
			return &b, true
		}
	}
	return nil, false
}

// Insert assigns the next id (max existing + 1, 1 for an empty catalog)
// and flushes before returning.
func (r *repo) Insert(ctx context.Context, b *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = nextID(r.books)
	r.books = append(r.books, *b)
	return r.st.Save(ctx, store.Books, r.books)
}

func (r *repo) Replace(ctx context.Context, b model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == b.ID {
			r.books[i] = b
			if err := r.st.Save(ctx, store.Books, r.books); err != nil {
				return nil, err
			}
			return &b, nil
		}
	}
	return nil, nil
}

func (r *repo) SetAvailable(ctx context.Context, id int64, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == id {
			r.books[i].Available = available
			return r.st.Save(ctx, store.Books, r.books)
		}
	}
	// Referenced book gone: skipped silently, matching the return flow.
	return nil
}

func nextID(books []model.Book) int64 {
	var max int64
	for i := range books {
		if books[i].ID > max {
			max = books[i].ID
		}
	}
	return max + 1
}
