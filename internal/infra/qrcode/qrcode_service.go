package qrcode

import (
	"net/url"
	"strings"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.BaseURL, qrCfg.Size, qrCfg.ErrorCorrectionLevel)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// parseRecoveryLevel accepts both the letter and the word form; anything else is medium.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProductURL is the public page encoded into a product's QR code.
func (s *qrcodeService) ProductURL(slug string) string {
	return s.baseURL + "/product/" + url.PathEscape(slug)
}

// GenerateProductQR renders the product link as a PNG.
func (s *qrcodeService) GenerateProductQR(slug string) ([]byte, error) {
	if slug == "" {
		return nil, errors.New("slug must not be empty")
	}

	png, err := qrcode.Encode(s.ProductURL(slug), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
