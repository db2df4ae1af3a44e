// Package membershipsvc manages membership records: creation with
// expiry-date arithmetic, cancellation (terminal) and extension.
package membershipsvc

import (
	"context"

	"librarydesk/apperr"
	"librarydesk/dates"
	"librarydesk/model"
)

// DefaultExtendMonths applies when an extend request carries no usable
// month count.
const DefaultExtendMonths = 6

type Repo interface {
	ByNo(no string) (*model.Membership, bool)
	Insert(ctx context.Context, m model.Membership) error
	Update(ctx context.Context, m model.Membership) error
}

type CreateInput struct {
	MembershipNo   string
	UserID         int64
	Name           string
	DurationMonths int
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*model.Membership, error)
	Update(ctx context.Context, no, action string, extendMonths int) (*model.Membership, error)
}

type service struct {
	r   Repo
	now func() dates.Date
}

func New(r Repo) Service { return &service{r: r, now: dates.Today} }

func (s *service) Create(ctx context.Context, in CreateInput) (*model.Membership, error) {
	if in.MembershipNo == "" || in.UserID <= 0 || in.Name == "" || in.DurationMonths <= 0 {
		return nil, apperr.New(apperr.Validation, "membership_no, user_id, name and duration_months required")
	}
	if _, ok := s.r.ByNo(in.MembershipNo); ok {
		return nil, apperr.New(apperr.Validation, "membership_no already exists")
	}
	start := s.now()
	m := model.Membership{
		MembershipNo:   in.MembershipNo,
		UserID:         in.UserID,
		Name:           in.Name,
		StartDate:      start,
		ExpiryDate:     start.AddMonths(in.DurationMonths),
		DurationMonths: in.DurationMonths,
		Active:         true,
	}
	if err := s.r.Insert(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *service) Update(ctx context.Context, no, action string, extendMonths int) (*model.Membership, error) {
	m, ok := s.r.ByNo(no)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "membership not found")
	}
	switch action {
	case model.ActionCancel:
		// Terminal: there is no path back to active.
		m.Active = false
	case model.ActionExtend:
		ext := extendMonths
		if ext <= 0 {
			ext = DefaultExtendMonths
		}
		// Extension counts from the current expiry, not from today.
		m.ExpiryDate = m.ExpiryDate.AddMonths(ext)
	default:
		return nil, apperr.New(apperr.Validation, "invalid action")
	}
	if err := s.r.Update(ctx, *m); err != nil {
		return nil, err
	}
	return m, nil
}
