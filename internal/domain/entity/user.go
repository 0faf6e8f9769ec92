package entity

import "time"

// Role distinguishes the two account kinds the storefront knows about.
// The data layer does not validate against this set (loose by contract).
type Role string

const (
	RolePurchaser Role = "purchaser"
	RoleVendor    Role = "vendor"
)

// User is a registered account. Purchasers carry a full name, vendors carry a
// business name; both fields exist on every row and are contextual by role.
type User struct {
	ID           int64
	Name         string  // Purchaser full name.
	Business     *string // Vendor business name, nil for purchasers.
	Email        string  // Unique login identifier.
	PasswordHash string  // bcrypt hash, never serialized in responses.
	Role         Role
	CreatedAt    time.Time
}
