package worker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arco-app/backend/internal/config"
	emailProvider "github.com/arco-app/backend/pkg/email"
)

const (
	confirmationSubject  = "Please Confirm you email"
	passwordResetSubject = "Please reset requested"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type linkEmailInput struct {
	Link string
}

func (s *emailSender) SendConfirmationEmail(_ context.Context, email string, link string) error {
	return s.send(email, confirmationSubject, s.config.Templates.Confirmation, link)
}

func (s *emailSender) SendPasswordResetEmail(_ context.Context, email string, link string) error {
	return s.send(email, passwordResetSubject, s.config.Templates.PasswordReset, link)
}

func (s *emailSender) send(email, subject, templateName, link string) error {
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	templatePath := filepath.Join(s.config.TemplatesDir, templateName)
	if err := sendInput.GenerateBodyFromHTML(templatePath, linkEmailInput{Link: link}); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
