package email

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRAttachment renders the share link as a PNG QR code attachment.
func QRAttachment(shareURL string) (Attachment, error) {
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return Attachment{}, fmt.Errorf("encode share QR: %w", err)
	}
	return Attachment{
		Content:  png,
		FileName: "estimate-qr.png",
		MIMEType: "image/png",
	}, nil
}
