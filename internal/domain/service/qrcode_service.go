package service

// QRCodeService renders QR codes for order pages
type QRCodeService interface {
	// GenerateOrderQR returns a PNG linking to the order detail page
	GenerateOrderQR(orderID uint) ([]byte, error)

	// OrderURL is the absolute URL encoded into the order QR code
	OrderURL(orderID uint) string
}
