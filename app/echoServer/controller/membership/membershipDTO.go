package membership

type CreateReq struct {
	MembershipNo   string `json:"membership_no" validate:"required"`
	UserID         int64  `json:"user_id" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required"`
	DurationMonths int    `json:"duration_months" validate:"required,gt=0"`
}

type UpdateReq struct {
	Action string `json:"action" validate:"required"`
	// Defaults to 6 when absent or non-positive.
	ExtendMonths int `json:"extend_months"`
}
