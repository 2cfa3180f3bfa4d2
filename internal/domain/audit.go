package domain

import "time"

// Audit event types written by the services. Free-form strings in the table;
// these constants cover the events this codebase emits.
const (
	AuditUserRegistered = "USER_REGISTERED"
	AuditUserLogin      = "USER_LOGIN"
	AuditUserLogout     = "USER_LOGOUT"
	AuditLoginFailed    = "LOGIN_FAILED"
	AuditWalletAdded    = "WALLET_ADDED"
	AuditPayment        = "PAYMENT_PROCESSED"
	AuditVehicleAdded   = "VEHICLE_ADDED"
	AuditVehicleStatus  = "VEHICLE_STATUS"
	AuditVehicleRate    = "VEHICLE_RATE"
	AuditRentalCreated  = "RENTAL_CREATED"
	AuditRentalApproved = "RENTAL_APPROVED"
	AuditRentalOverdue  = "RENTAL_OVERDUE"
	AuditRentalExpired  = "RENTAL_EXPIRED"
)

type AuditEvent struct {
	ID        int32     `json:"id"`
	EventType string    `json:"event_type"`
	Message   string    `json:"message"`
	UserID    *int32    `json:"user_id,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}
