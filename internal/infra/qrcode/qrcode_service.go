package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"backroom/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	LocationID string `json:"location_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateLocationQR generates a PNG QR code carrying the location identity.
func (s *qrcodeService) GenerateLocationQR(locationID int64) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		LocationID: strconv.FormatInt(locationID, 10),
		Type:       "location",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/locations/%d", s.baseURL, locationID)
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseLocationQR parses QR code data and returns the location ID
func (s *qrcodeService) ParseLocationQR(qrData string) (int64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "location" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	locationID, err := strconv.ParseInt(data.LocationID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse location ID: %w", err)
	}

	return locationID, nil
}
