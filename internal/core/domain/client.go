package domain

import "time"

// ClientStatus represents the lifecycle state of a firm's client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientArchived ClientStatus = "archived"
)

// Client is a customer of a firm. Always firm-scoped: no query may cross
// the FirmID boundary of the request that issued it.
type Client struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	FirmID    string       `json:"firm_id" bson:"firm_id"`
	Name      string       `json:"name" bson:"name"`
	Email     string       `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Status    ClientStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}
