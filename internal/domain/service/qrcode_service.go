package service

// QRCodeService renders share links as QR code images.
type QRCodeService interface {
	// GenerateProductQR returns a PNG encoding the public link of the product with slug.
	GenerateProductQR(slug string) ([]byte, error)
}
