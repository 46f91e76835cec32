package usecase

import "context"

type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// EmailProvider sends operational notification mail.
type EmailProvider interface {
	SendEmail(ctx context.Context, email Email) error
}
