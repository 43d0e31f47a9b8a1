package domain

import "time"

const (
	RoleStaff  = "staff"
	RoleClient = "client"
)

// User models an authenticated actor in the system. FirmID is empty for
// platform-level accounts that are not attached to any firm.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FirmID       string    `json:"firm_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the minimal identity the access-control core reads. It is
// populated once at the trust boundary (the auth middleware) from verified
// token claims, never ad hoc from request data.
type Principal struct {
	UserID string
	FirmID string // empty means no firm: every module access check fails closed
	Role   string
}

// RequestScope is the immutable tenant boundary attached to a request.
// Every query executed on behalf of the request must be filtered by FirmID.
type RequestScope struct {
	FirmID   string
	ClientID string // set only for client-portal principals
}
