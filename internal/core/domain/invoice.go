package domain

import "time"

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
	InvoiceVoided  InvoiceStatus = "voided"
)

// Invoice is a firm-scoped billing document. IssueDate and DueDate are
// calendar dates (YYYY-MM-DD), meaningful only as year-month-day: they are
// stored and compared as strings so no UTC/local conversion can shift them.
type Invoice struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	FirmID    string        `json:"firm_id" bson:"firm_id"`
	ClientID  string        `json:"client_id" bson:"client_id"`
	Number    string        `json:"number" bson:"number"`
	Amount    float64       `json:"amount" bson:"amount"`
	Currency  string        `json:"currency" bson:"currency"`
	IssueDate string        `json:"issue_date" bson:"issue_date"`
	DueDate   string        `json:"due_date" bson:"due_date"`
	Status    InvoiceStatus `json:"status" bson:"status"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
