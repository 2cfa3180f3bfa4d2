package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusApproved  RentalStatus = "APPROVED"
	RentalStatusRejected  RentalStatus = "REJECTED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusOverdue   RentalStatus = "OVERDUE"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type Rental struct {
	ID            int32         `json:"id"`
	UserID        int32         `json:"user_id"`
	VehicleID     int32         `json:"vehicle_id"`
	RentalDate    time.Time     `json:"rental_date"`
	ReturnDate    time.Time     `json:"return_date"`
	TotalCents    int64         `json:"total_cents"`
	Status        RentalStatus  `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentRef    string        `json:"payment_ref"`
	ApprovedBy    *int32        `json:"approved_by,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
}

// Days is the billable day count, the span between rental and return date.
func (r *Rental) Days() int64 {
	return int64(r.ReturnDate.Sub(r.RentalDate).Hours() / 24)
}
