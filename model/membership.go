// model/membership.go
package model

import "librarydesk/dates"

type Membership struct {
	MembershipNo   string     `json:"membership_no"`
	UserID         int64      `json:"user_id"`
	Name           string     `json:"name"`
	StartDate      dates.Date `json:"start_date"`
	ExpiryDate     dates.Date `json:"expiry_date"`
	DurationMonths int        `json:"duration_months"`
	Active         bool       `json:"active"`
}

// Membership update actions.
const (
	ActionCancel = "cancel"
	ActionExtend = "extend"
)
