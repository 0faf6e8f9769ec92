package entity

// Testimonial is a short customer quote shown on the storefront landing page.
type Testimonial struct {
	ID     int64
	Name   string
	Quote  string
	Avatar string
}
