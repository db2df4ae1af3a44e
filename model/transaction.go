// model/transaction.go
package model

import "librarydesk/dates"

// Transaction is one issue-to-return loan cycle. It is never deleted;
// returning and paying the fine only flip its state forward.
type Transaction struct {
	ID               int64       `json:"id"`
	BookID           int64       `json:"book_id"`
	MemberName       string      `json:"member_name"`
	IssueDate        dates.Date  `json:"issue_date"`
	ReturnDate       dates.Date  `json:"return_date"` // scheduled
	Remarks          string      `json:"remarks"`
	Returned         bool        `json:"returned"`
	ActualReturnDate *dates.Date `json:"actual_return_date,omitempty"`
	SerialNo         string      `json:"serial_no,omitempty"`
	Fine             int64       `json:"fine"`
	FinePaid         bool        `json:"fine_paid"`
	FinePaidAmount   int64       `json:"fine_paid_amount"`
	FineRemarks      string      `json:"fine_remarks,omitempty"`
}
