package loan

type IssueReq struct {
	BookID     int64  `json:"book_id" validate:"required,gt=0"`
	MemberName string `json:"member_name" validate:"required"`
	IssueDate  string `json:"issue_date" validate:"required"`
	ReturnDate string `json:"return_date" validate:"required"`
	Remarks    string `json:"remarks"`
}

type ReturnReq struct {
	TransactionID int64  `json:"transaction_id" validate:"required,gt=0"`
	SerialNo      string `json:"serial_no" validate:"required"`
	ReturnDate    string `json:"return_date" validate:"required"`
}

type PayFineReq struct {
	TransactionID int64 `json:"transaction_id" validate:"required,gt=0"`
	// false is a legal value here; the conflict check lives in the service.
	FinePaid bool   `json:"fine_paid"`
	Remarks  string `json:"remarks"`
}
