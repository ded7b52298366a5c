package service

import "context"

// Mailer delivers account emails.
type Mailer interface {
	// SendActivationCode mails the activation code to the account address.
	SendActivationCode(ctx context.Context, to, fullName, code string) error
}
