package qrcode

import (
	"testing"

	"catalog/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_ProductURL(t *testing.T) {
	svc := newQRCodeService("https://shop.example.com/", 0, "M")

	assert.Equal(t, "https://shop.example.com/product/fresh-milk-1l", svc.ProductURL("fresh-milk-1l"))
	assert.Equal(t, defaultSize, svc.size)
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:    128,
		BaseURL: "https://shop.example.com",
	}})

	png, err := svc.GenerateProductQR("fresh-milk-1l")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestQRCodeService_EmptySlug(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateProductQR("")

	assert.Error(t, err)
}
