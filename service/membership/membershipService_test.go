package membershipsvc

import (
	"context"
	"testing"
	"time"

	"librarydesk/apperr"
	"librarydesk/dates"
	"librarydesk/model"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	members []model.Membership
}

func (f *fakeRepo) ByNo(no string) (*model.Membership, bool) {
	for i := range f.members {
		if f.members[i].MembershipNo == no {
			cp := f.members[i]
			return &cp, true
		}
	}
	return nil, false
}

func (f *fakeRepo) Insert(_ context.Context, m model.Membership) error {
	f.members = append(f.members, m)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, m model.Membership) error {
	for i := range f.members {
		if f.members[i].MembershipNo == m.MembershipNo {
			f.members[i] = m
		}
	}
	return nil
}

func newService(r Repo, today dates.Date) *service {
	return &service{r: r, now: func() dates.Date { return today }}
}

func TestCreate_ExpiryArithmetic(t *testing.T) {
	svc := newService(&fakeRepo{}, dates.New(2024, time.January, 15))

	m, err := svc.Create(context.Background(), CreateInput{
		MembershipNo: "M-001", UserID: 2, Name: "Standard User", DurationMonths: 6,
	})
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", m.StartDate.String())
	require.Equal(t, "2024-07-15", m.ExpiryDate.String())
	require.True(t, m.Active)
}

func TestCreate_MonthEndRollover(t *testing.T) {
	svc := newService(&fakeRepo{}, dates.New(2024, time.January, 31))

	m, err := svc.Create(context.Background(), CreateInput{
		MembershipNo: "M-002", UserID: 2, Name: "Standard User", DurationMonths: 1,
	})
	require.NoError(t, err)
	// Jan 31 + 1 month normalizes past Feb 29 in a leap year.
	require.Equal(t, "2024-03-02", m.ExpiryDate.String())
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newService(&fakeRepo{}, dates.Today())

	for _, in := range []CreateInput{
		{UserID: 1, Name: "x", DurationMonths: 6},
		{MembershipNo: "M-1", Name: "x", DurationMonths: 6},
		{MembershipNo: "M-1", UserID: 1, DurationMonths: 6},
		{MembershipNo: "M-1", UserID: 1, Name: "x"},
	} {
		_, err := svc.Create(context.Background(), in)
		require.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}

func TestCreate_DuplicateNo(t *testing.T) {
	r := &fakeRepo{}
	svc := newService(r, dates.Today())

	in := CreateInput{MembershipNo: "M-1", UserID: 1, Name: "x", DurationMonths: 6}
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), in)
	require.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestUpdate_ExtendFromCurrentExpiry(t *testing.T) {
	r := &fakeRepo{}
	svc := newService(r, dates.New(2024, time.January, 15))

	_, err := svc.Create(context.Background(), CreateInput{
		MembershipNo: "M-1", UserID: 1, Name: "x", DurationMonths: 6,
	})
	require.NoError(t, err)

	m, err := svc.Update(context.Background(), "M-1", "extend", 3)
	require.NoError(t, err)
	require.Equal(t, "2024-10-15", m.ExpiryDate.String())
	require.True(t, m.Active)
}

func TestUpdate_ExtendDefaultsToSixMonths(t *testing.T) {
	r := &fakeRepo{}
	svc := newService(r, dates.New(2024, time.January, 15))

	_, err := svc.Create(context.Background(), CreateInput{
		MembershipNo: "M-1", UserID: 1, Name: "x", DurationMonths: 6,
	})
	require.NoError(t, err)

	m, err := svc.Update(context.Background(), "M-1", "extend", 0)
	require.NoError(t, err)
	require.Equal(t, "2025-01-15", m.ExpiryDate.String())
}

func TestUpdate_CancelIsTerminal(t *testing.T) {
	r := &fakeRepo{}
	svc := newService(r, dates.Today())

	_, err := svc.Create(context.Background(), CreateInput{
		MembershipNo: "M-1", UserID: 1, Name: "x", DurationMonths: 6,
	})
	require.NoError(t, err)

	m, err := svc.Update(context.Background(), "M-1", "cancel", 0)
	require.NoError(t, err)
	require.False(t, m.Active)

	// Extending a canceled membership moves the expiry but never
	// reactivates it.
	m, err = svc.Update(context.Background(), "M-1", "extend", 1)
	require.NoError(t, err)
	require.False(t, m.Active)
}

func TestUpdate_UnknownNo(t *testing.T) {
	svc := newService(&fakeRepo{}, dates.Today())

	_, err := svc.Update(context.Background(), "nope", "cancel", 0)
	require.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdate_InvalidAction(t *testing.T) {
	r := &fakeRepo{}
	svc := newService(r, dates.Today())

	_, err := svc.Create(context.Background(), CreateInput{
		MembershipNo: "M-1", UserID: 1, Name: "x", DurationMonths: 6,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "M-1", "pause", 0)
	require.Equal(t, apperr.Validation, apperr.KindOf(err))
}
