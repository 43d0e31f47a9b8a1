package domain

import "time"

// AuditAction names a recorded administrative action.
type AuditAction string

const (
	AuditPermissionsChanged   AuditAction = "permissions_changed"
	AuditInvoiceStatusChanged AuditAction = "invoice_status_changed"
	AuditUserDeactivated      AuditAction = "user_deactivated"
)

// AuditEntry is one line of a firm's audit trail.
type AuditEntry struct {
	ID         string      `bson:"_id,omitempty" json:"id"`
	FirmID     string      `bson:"firm_id" json:"firm_id"`
	ActorID    string      `bson:"actor_id" json:"actor_id"`
	Action     AuditAction `bson:"action" json:"action"`
	TargetID   string      `bson:"target_id" json:"target_id"`
	Detail     string      `bson:"detail,omitempty" json:"detail,omitempty"`
	OccurredAt time.Time   `bson:"occurred_at" json:"occurred_at"`
}
