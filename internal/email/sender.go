// Package email delivers finalized estimates to homeowners over SMTP.
package email

import "context"

// Attachment represents a file attachment for an email.
type Attachment struct {
	Content  []byte
	FileName string
	MIMEType string
}

// EstimateEmail is everything the estimate delivery template needs.
type EstimateEmail struct {
	Summary        string
	ShareURL       string
	TotalFormatted string
}

// Sender delivers estimate emails. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendEstimateEmail(ctx context.Context, toEmail string, data EstimateEmail, attachments ...Attachment) error
}

// NoopSender is used when email delivery is disabled.
type NoopSender struct{}

func (NoopSender) SendEstimateEmail(ctx context.Context, toEmail string, data EstimateEmail, attachments ...Attachment) error {
	return nil
}
