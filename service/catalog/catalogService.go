// Package catalogsvc is the catalog manager: create, full-replace update,
// lookup and substring search over books. Availability is owned by the
// loan service; this package only carries the flag through.
package catalogsvc

import (
	"context"
	"strings"

	"librarydesk/apperr"
	"librarydesk/model"
)

type Repo interface {
	All() []model.Book
	ByID(id int64) (*model.Book, bool)
	Insert(ctx context.Context, b *model.Book) error
	Replace(ctx context.Context, b model.Book) (*model.Book, error)
}

// Input carries the mutable book fields for add and update.
type Input struct {
	Title     string
	Author    string
	Category  string
	SerialNo  string
	Available bool
}

// SearchFilters are OR-combined; at least one must be present.
type SearchFilters struct {
	Title    string
	Author   string
	Category string
}

type Service interface {
	Add(ctx context.Context, in Input) (*model.Book, error)
	Update(ctx context.Context, id int64, in Input) (*model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	Search(ctx context.Context, f SearchFilters) ([]model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Add(ctx context.Context, in Input) (*model.Book, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	b := model.Book{
		Title:     in.Title,
		Author:    in.Author,
		Category:  in.Category,
		SerialNo:  in.SerialNo,
		Available: in.Available,
	}
	if err := s.r.Insert(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update replaces every mutable field, availability included. It is a
// full replace, not a patch.
func (s *service) Update(ctx context.Context, id int64, in Input) (*model.Book, error) {
	if _, ok := s.r.ByID(id); !ok {
		return nil, apperr.New(apperr.NotFound, "book not found")
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	b := model.Book{
		ID:        id,
		Title:     in.Title,
		Author:    in.Author,
		Category:  in.Category,
		SerialNo:  in.SerialNo,
		Available: in.Available,
	}
	return s.r.Replace(ctx, b)
}

func (s *service) Get(_ context.Context, id int64) (*model.Book, error) {
	b, ok := s.r.ByID(id)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "book not found")
	}
	return b, nil
}

func (s *service) List(_ context.Context) ([]model.Book, error) {
	return s.r.All(), nil
}

// Search matches a case-insensitive substring on any provided field,
// in catalog insertion order.
func (s *service) Search(_ context.Context, f SearchFilters) ([]model.Book, error) {
	if f.Title == "" && f.Author == "" && f.Category == "" {
		return nil, apperr.New(apperr.Validation, "at least one search field required")
	}
	var out []model.Book
	for _, b := range s.r.All() {
		if matches(f.Title, b.Title) || matches(f.Author, b.Author) || matches(f.Category, b.Category) {
			out = append(out, b)
		}
	}
	return out, nil
}

func matches(needle, haystack string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func validate(in Input) error {
	if in.Title == "" || in.Author == "" || in.Category == "" || in.SerialNo == "" {
		return apperr.New(apperr.Validation, "title, author, category and serial_no are required")
	}
	return nil
}
