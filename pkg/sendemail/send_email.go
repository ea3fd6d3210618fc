package sendemail

import (
	"errors"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrNotConfigured = errors.New("email service is not configured")

type EmailService interface {
	SendEmail(subject, toEmail, plainTextContent, htmlContent string) error
}

type emailService struct {
	client      *sendgrid.Client
	senderEmail string
	senderName  string
}

// NewEmailService builds a sendgrid-backed sender. An empty apiKey yields a
// service that refuses every send with ErrNotConfigured instead of calling out.
func NewEmailService(apiKey, senderEmail, senderName string) EmailService {
	svc := &emailService{
		senderEmail: senderEmail,
		senderName:  senderName,
	}
	if apiKey != "" {
		svc.client = sendgrid.NewSendClient(apiKey)
	}
	return svc
}

func (e *emailService) SendEmail(subject, toEmail, plainTextContent, htmlContent string) error {
	if e.client == nil {
		return ErrNotConfigured
	}

	from := mail.NewEmail(e.senderName, e.senderEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := e.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return errors.New("failed to send email")
	}
	return nil
}
