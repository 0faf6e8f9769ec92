// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry offered by a vendor. Newly created products are
// unapproved and stay so until an explicit approval action flips the flag.
// There is no reverse transition.
type Product struct {
	ID        int64           // Store-generated identifier.
	Name      string          // Display name, required.
	Category  string          // Category label, required. Matched exactly by client-side filters.
	Price     decimal.Decimal // Unit price. Parseability is the only constraint; bounds stay unchecked.
	Stock     int             // Units on hand. No reservation or decrement semantics.
	Image     *string         // Relative upload path or absolute URL. Nil when no image was provided.
	Approved  bool            // Visibility gate, false until approved.
	CreatedAt time.Time
}
