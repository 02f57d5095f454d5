package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel, "")
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M", "http://localhost:8080/")

		qrBytes, err := svc.GenerateShopQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	shopID := uuid.New()

	jsonData, err := json.Marshal(QRCodeData{ShopID: shopID.String(), Type: "shop"})
	require.NoError(t, err)

	parsedID, err := svc.ParseShopQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, shopID, parsedID)
}

func TestQRCodeService_ParseShopQR_Errors(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"shop_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad uuid", `{"shop_id":"not-a-valid-uuid","type":"shop"}`, "failed to parse shop ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseShopQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
