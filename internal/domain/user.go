package domain

import (
	"time"
)

// UserProfile holds the identity attributes captured at registration.
// Immutable after creation.
type UserProfile struct {
	ID        int64  `db:"id" json:"id"`
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	AcceptTOS bool   `db:"accept_tos" json:"accept_tos"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Account status codes.
const (
	StatusCodeEmailNonConfirmed = "0"
	StatusNameEmailNonConfirmed = "EMAIL_NON_CONFIRMED"
)

// UserAccountStatus classifies an account's confirmation state. Each
// account references its own status row.
type UserAccountStatus struct {
	ID   int64  `db:"id" json:"id"`
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UserAccount holds credentials and confirmation state. ConfirmedOn is set
// if and only if Confirmed is true.
type UserAccount struct {
	ID          int64      `db:"id" json:"id"`
	Email       string     `db:"email" json:"email"`
	Username    string     `db:"username" json:"username"`
	Password    string     `db:"password" json:"-"`
	Confirmed   bool       `db:"confirmed" json:"confirmed"`
	ConfirmedOn *time.Time `db:"confirmed_on" json:"confirmed_on,omitempty"`

	UserProfileID       int64 `db:"user_profile_id" json:"user_profile_id"`
	UserAccountStatusID int64 `db:"user_account_status_id" json:"user_account_status_id"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
