package service

// QRCodeService defines the interface for order tracking QR codes.
type QRCodeService interface {
	// GenerateOrderQR generates a PNG QR code carrying the order's
	// tracking payload.
	GenerateOrderQR(orderID string) ([]byte, error)

	// GeneratePrintableOrderQR generates a PNG QR at the highest error
	// correction level, suitable for thermal label printers.
	GeneratePrintableOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR parses QR payload data and returns the order ID.
	ParseOrderQR(qrData string) (string, error)
}
