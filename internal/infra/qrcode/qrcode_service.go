package qrcode

import (
	"encoding/json"
	"strings"

	"pricecheck/internal/domain/service"
	"pricecheck/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const shopQRType = "shop"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ShopID string `json:"shop_id"`
	Type   string `json:"type"`
	URL    string `json:"url,omitempty"`
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateShopQR generates a PNG QR code linking to a shop
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		ShopID: shopID.String(),
		Type:   shopQRType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/api/v1/shops/" + shopID.String()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShopQR parses QR code data and returns the shop ID
func (s *qrcodeService) ParseShopQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != shopQRType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	shopID, err := uuid.Parse(data.ShopID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse shop ID")
	}

	return shopID, nil
}
