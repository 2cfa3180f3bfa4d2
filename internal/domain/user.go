package domain

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
	RoleOwner    Role = "OWNER"
)

type User struct {
	ID                 int32  `json:"id"`
	Username           string `json:"username"`
	PasswordHash       string `json:"-"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Role               Role   `json:"role"`
	WalletBalanceCents int64  `json:"wallet_balance_cents"`
	Active             bool   `json:"active"`
	CreatedOn          string `json:"created_on"`
}
