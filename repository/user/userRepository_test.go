package userrepo

import (
	"context"
	"testing"

	"librarydesk/model"
	"librarydesk/store"
	"librarydesk/util/hash"

	"github.com/stretchr/testify/require"
)

func TestSeedsDefaultsWhenEmpty(t *testing.T) {
	ms := store.NewMemoryStore()
	r, err := New(context.Background(), ms)
	require.NoError(t, err)

	admin, ok := r.ByUsername("admin")
	require.True(t, ok)
	require.Equal(t, model.RoleAdmin, admin.Role)
	require.True(t, hash.Check(admin.PasswordHash, "admin"))

	user, ok := r.ByUsername("user")
	require.True(t, ok)
	require.Equal(t, model.RoleUser, user.Role)
	require.True(t, hash.Check(user.PasswordHash, "user"))

	// Seeding flushed the collection.
	require.Equal(t, 1, ms.Saves(store.Users))
}

func TestNoSeedWhenUsersExist(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, ms.Save(ctx, store.Users, []model.User{{ID: 1, Username: "librarian", Role: "admin"}}))

	r, err := New(ctx, ms)
	require.NoError(t, err)

	_, ok := r.ByUsername("admin")
	require.False(t, ok)
	_, ok = r.ByUsername("librarian")
	require.True(t, ok)
}

func TestInsertAssignsNextID(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	r, err := New(ctx, ms)
	require.NoError(t, err)

	u := model.User{Username: "clerk", Name: "Front Desk", Role: "user"}
	require.NoError(t, r.Insert(ctx, &u))
	require.Equal(t, int64(3), u.ID)
}
