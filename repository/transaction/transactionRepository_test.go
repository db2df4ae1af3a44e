package txrepo

import (
	"context"
	"testing"
	"time"

	"librarydesk/dates"
	"librarydesk/model"
	"librarydesk/store"

	"github.com/stretchr/testify/require"
)

func TestInsertAndUpdate(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	r, err := New(ctx, ms)
	require.NoError(t, err)

	tr := model.Transaction{
		BookID:     1,
		MemberName: "halim",
		IssueDate:  dates.New(2024, time.March, 1),
		ReturnDate: dates.New(2024, time.March, 11),
	}
	require.NoError(t, r.Insert(ctx, &tr))
	require.Equal(t, int64(1), tr.ID)

	tr.Returned = true
	actual := dates.New(2024, time.March, 11)
	tr.ActualReturnDate = &actual
	require.NoError(t, r.Update(ctx, tr))

	got, ok := r.ByID(1)
	require.True(t, ok)
	require.True(t, got.Returned)
	require.Equal(t, 2, ms.Saves(store.Transactions))
}

func TestSurvivesReload(t *testing.T) {
	ms := store.NewMemoryStore()
	ctx := context.Background()
	r, err := New(ctx, ms)
	require.NoError(t, err)

	tr := model.Transaction{BookID: 1, MemberName: "halim"}
	require.NoError(t, r.Insert(ctx, &tr))

	// A fresh repo over the same store sees the flushed record and
	// continues the id sequence.
	r2, err := New(ctx, ms)
	require.NoError(t, err)
	got, ok := r2.ByID(1)
	require.True(t, ok)
	require.Equal(t, "halim", got.MemberName)

	next := model.Transaction{BookID: 2, MemberName: "other"}
	require.NoError(t, r2.Insert(ctx, &next))
	require.Equal(t, int64(2), next.ID)
}
