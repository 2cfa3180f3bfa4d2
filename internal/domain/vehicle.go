package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

// CompanyOwnerID marks a vehicle owned by the rental company itself.
const CompanyOwnerID int32 = 0

type Vehicle struct {
	ID             int32         `json:"id"`
	RegistrationNo string        `json:"registration_no"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	Year           int32         `json:"year"`
	Color          string        `json:"color"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	Status         VehicleStatus `json:"status"`
	OwnerID        int32         `json:"owner_id"`
	UserListed     bool          `json:"user_listed"`
	Location       string        `json:"location"`
}
