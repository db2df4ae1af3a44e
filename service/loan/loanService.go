// Package loansvc is the loan lifecycle engine. A transaction moves
// OPEN -> RETURNED (with or without a fine) -> fine paid, and the
// referenced book's availability flips on issue and return.
package loansvc

import (
	"context"

	"librarydesk/apperr"
	"librarydesk/dates"
	"librarydesk/model"
)

const (
	// MaxLoanDays is the longest allowed loan period; the 15th day
	// itself is still valid.
	MaxLoanDays = 15
	// FinePerDay is charged per calendar day late, in whole currency units.
	FinePerDay = 10
)

type BookRepo interface {
	ByID(id int64) (*model.Book, bool)
	SetAvailable(ctx context.Context, id int64, available bool) error
}

type TxRepo interface {
	ByID(id int64) (*model.Transaction, bool)
	Insert(ctx context.Context, t *model.Transaction) error
	Update(ctx context.Context, t model.Transaction) error
}

type IssueInput struct {
	BookID     int64
	MemberName string
	IssueDate  string
	ReturnDate string
	Remarks    string
}

type Service interface {
	Issue(ctx context.Context, in IssueInput) (*model.Transaction, error)
	Return(ctx context.Context, txID int64, serialNo, returnDate string) (*model.Transaction, error)
	PayFine(ctx context.Context, txID int64, finePaid bool, remarks string) (*model.Transaction, error)
}

type service struct {
	books BookRepo
	txs   TxRepo
	now   func() dates.Date
}

func New(books BookRepo, txs TxRepo) Service {
	return &service{books: books, txs: txs, now: dates.Today}
}

func (s *service) Issue(ctx context.Context, in IssueInput) (*model.Transaction, error) {
	if in.BookID <= 0 || in.MemberName == "" {
		return nil, apperr.New(apperr.Validation, "book_id and member_name required")
	}
	issued, err := dates.Parse(in.IssueDate)
	if err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}
	due, err := dates.Parse(in.ReturnDate)
	if err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	book, ok := s.books.ByID(in.BookID)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "book not found")
	}
	if !book.Available {
		return nil, apperr.New(apperr.Conflict, "book not available")
	}
	if issued.Before(s.now()) {
		return nil, apperr.New(apperr.Validation, "issue date cannot be before today")
	}
	if due.After(issued.AddDays(MaxLoanDays)) {
		return nil, apperr.New(apperr.Validation, "return date cannot be greater than 15 days from issue")
	}

	t := model.Transaction{
		BookID:     book.ID,
		MemberName: in.MemberName,
		IssueDate:  issued,
		ReturnDate: due,
		Remarks:    in.Remarks,
	}
	// Transaction first, then the book. There is no rollback: a failed
	// book write leaves an open transaction against an available book.
	if err := s.txs.Insert(ctx, &t); err != nil {
		return nil, err
	}
	if err := s.books.SetAvailable(ctx, book.ID, false); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) Return(ctx context.Context, txID int64, serialNo, returnDate string) (*model.Transaction, error) {
	if txID <= 0 || serialNo == "" {
		return nil, apperr.New(apperr.Validation, "transaction_id and serial_no required")
	}
	actual, err := dates.Parse(returnDate)
	if err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}
	t, ok := s.txs.ByID(txID)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "transaction not found")
	}
	if t.Returned {
		return nil, apperr.New(apperr.Conflict, "book already returned")
	}

	var fine int64
	if actual.After(t.ReturnDate) {
		fine = int64(actual.DaysSince(t.ReturnDate)) * FinePerDay
	}
	t.Returned = true
	t.ActualReturnDate = &actual
	t.Fine = fine
	// The serial number supplied at return wins, unvalidated. Carried
	// over from the original behavior.
	t.SerialNo = serialNo

	if err := s.txs.Update(ctx, *t); err != nil {
		return nil, err
	}
	// Frees the copy; a vanished book is skipped silently.
	if err := s.books.SetAvailable(ctx, t.BookID, true); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) PayFine(ctx context.Context, txID int64, finePaid bool, remarks string) (*model.Transaction, error) {
	if txID <= 0 {
		return nil, apperr.New(apperr.Validation, "transaction_id required")
	}
	t, ok := s.txs.ByID(txID)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "transaction not found")
	}
	if t.Fine > 0 && !finePaid {
		return nil, apperr.New(apperr.Conflict, "fine must be paid to complete return")
	}
	t.FinePaid = finePaid
	t.FinePaidAmount = t.Fine
	t.FineRemarks = remarks
	if err := s.txs.Update(ctx, *t); err != nil {
		return nil, err
	}
	return t, nil
}
