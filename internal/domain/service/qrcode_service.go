package service

// QRCodeService defines the interface for generating store signage QR
// codes that link a physical location to its dashboard.
type QRCodeService interface {
	// GenerateLocationQR generates a PNG QR code for a location.
	GenerateLocationQR(locationID int64) ([]byte, error)

	// ParseLocationQR parses scanned QR code data and returns the location ID.
	ParseLocationQR(qrData string) (int64, error)
}
