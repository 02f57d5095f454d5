package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code that links to a shop.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ParseShopQR parses QR code data and returns the shop ID
	ParseShopQR(qrData string) (uuid.UUID, error)
}
