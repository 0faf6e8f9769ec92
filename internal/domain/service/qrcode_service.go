package service

// QRCodeService defines the interface for generating product share QR codes.
type QRCodeService interface {
	// GenerateShareQR renders the given share URL as a PNG QR code.
	GenerateShareQR(shareURL string) ([]byte, error)
}
