// Package reportsvc derives read-only views over the transaction
// collection. Both reports re-filter on every call.
package reportsvc

import (
	"context"

	"librarydesk/dates"
	"librarydesk/model"
)

type TxRepo interface {
	All() []model.Transaction
}

type Service interface {
	ActiveLoans(ctx context.Context) ([]model.Transaction, error)
	OverdueLoans(ctx context.Context) ([]model.Transaction, error)
}

type service struct {
	txs TxRepo
	now func() dates.Date
}

func New(txs TxRepo) Service { return &service{txs: txs, now: dates.Today} }

func (s *service) ActiveLoans(_ context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range s.txs.All() {
		if !t.Returned {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *service) OverdueLoans(_ context.Context) ([]model.Transaction, error) {
	today := s.now()
	var out []model.Transaction
	for _, t := range s.txs.All() {
		if !t.Returned && t.ReturnDate.Before(today) {
			out = append(out, t)
		}
	}
	return out, nil
}
