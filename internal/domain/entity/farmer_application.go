package entity

import "time"

// FarmerApplication is a submission requesting marketplace seller status.
// Applications are reviewed out-of-band; there is no approve/reject path here.
type FarmerApplication struct {
	ID           int64
	BusinessName string
	OwnerName    string
	Email        string
	Phone        *string
	City         string
	Products     string // Free-text description of what the applicant sells.
	BankDetails  *string
	Website      *string
	Photo        *string // Base64 payload or URL, stored opaquely.
	CreatedAt    time.Time
}
