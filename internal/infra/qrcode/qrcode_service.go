// Package qrcode draws the QR code printed on order pages.
package qrcode

import (
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	defaultSize = 256
	maxSize     = 1024
)

//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	baseURL string
	size    int
	level   qrcode.RecoveryLevel
}

// NewQRCodeService encodes absolute links under http.baseUrl.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var size int
	var level string
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(cfg.HTTP.BaseURL, size, level)
}

// newQRCodeService falls back to 256px and level M for unset or unknown values.
func newQRCodeService(baseURL string, size int, level string) *qrcodeService {
	recovery, ok := recoveryLevels[strings.ToUpper(level)]
	if !ok {
		recovery = qrcode.Medium
	}

	if size <= 0 || size > maxSize {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    size,
		level:   recovery,
	}
}

func (s *qrcodeService) OrderURL(orderID uint) string {
	return s.baseURL + "/order/" + strconv.FormatUint(uint64(orderID), 10) + "/"
}

func (s *qrcodeService) GenerateOrderQR(orderID uint) ([]byte, error) {
	png, err := qrcode.Encode(s.OrderURL(orderID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "encode QR code for order %d", orderID)
	}

	return png, nil
}
