package domain

import "time"

// Firm is the tenant boundary: it owns users, clients, and every
// firm-scoped record in the system.
type Firm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FirmUserPermission is the per-firm set of module keys granted to a user.
// It is read on every non-admin access check and mutated only by admins.
type FirmUserPermission struct {
	UserID    string      `json:"user_id"`
	FirmID    string      `json:"firm_id"`
	Modules   []ModuleKey `json:"modules"`
	UpdatedAt time.Time   `json:"updated_at"`
}
