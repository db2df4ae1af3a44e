package bookrepo

import (
	"context"
	"testing"

	"librarydesk/model"
	"librarydesk/store"

	"github.com/stretchr/testify/require"
)

func TestInsertAssignsSequentialIDs(t *testing.T) {
	ms := store.NewMemoryStore()
	r, err := New(context.Background(), ms)
	require.NoError(t, err)

	a := model.Book{Title: "A", Author: "a", Category: "c", SerialNo: "1"}
	b := model.Book{Title: "B", Author: "b", Category: "c", SerialNo: "2"}
	require.NoError(t, r.Insert(context.Background(), &a))
	require.NoError(t, r.Insert(context.Background(), &b))
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)

	// Every insert flushes the whole collection.
	require.Equal(t, 2, ms.Saves(store.Books))
}

func TestLoadKeepsExistingIDsAhead(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, ms.Save(ctx, store.Books, []model.Book{{ID: 7, Title: "old"}}))

	r, err := New(ctx, ms)
	require.NoError(t, err)

	b := model.Book{Title: "new", Author: "a", Category: "c", SerialNo: "1"}
	require.NoError(t, r.Insert(ctx, &b))
	require.Equal(t, int64(8), b.ID)
}

func TestSetAvailable(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	r, err := New(ctx, ms)
	require.NoError(t, err)

	b := model.Book{Title: "A", Author: "a", Category: "c", SerialNo: "1", Available: true}
	require.NoError(t, r.Insert(ctx, &b))

	require.NoError(t, r.SetAvailable(ctx, b.ID, false))
	got, ok := r.ByID(b.ID)
	require.True(t, ok)
	require.False(t, got.Available)

	// Unknown id is skipped without flushing.
	saves := ms.Saves(store.Books)
	require.NoError(t, r.SetAvailable(ctx, 99, true))
	require.Equal(t, saves, ms.Saves(store.Books))
}

func TestReplace(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	r, err := New(ctx, ms)
	require.NoError(t, err)

	b := model.Book{Title: "A", Author: "a", Category: "c", SerialNo: "1"}
	require.NoError(t, r.Insert(ctx, &b))

	b.Title = "A2"
	got, err := r.Replace(ctx, b)
	require.NoError(t, err)
	require.Equal(t, "A2", got.Title)

	missing, err := r.Replace(ctx, model.Book{ID: 42})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestByIDReturnsCopy(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	r, err := New(ctx, ms)
	require.NoError(t, err)

	b := model.Book{Title: "A", Author: "a", Category: "c", SerialNo: "1"}
	require.NoError(t, r.Insert(ctx, &b))

	got, _ := r.ByID(b.ID)
	got.Title = "mutated"
	again, _ := r.ByID(b.ID)
	require.Equal(t, "A", again.Title)
}
