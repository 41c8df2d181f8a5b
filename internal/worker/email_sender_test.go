package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arco-app/backend/internal/config"
	emailProvider "github.com/arco-app/backend/pkg/email"
	mock_email "github.com/arco-app/backend/pkg/email/mock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEmailConfig(t *testing.T) config.EmailConfig {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{"confirm_email.html", "reset_email.html"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte(`<a href="{{.Link}}">link</a>`), 0o600)
		require.NoError(t, err)
	}

	return config.EmailConfig{
		TemplatesDir: dir,
		Templates: config.EmailTemplates{
			Confirmation:  "confirm_email.html",
			PasswordReset: "reset_email.html",
		},
	}
}

func TestSendConfirmationEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.MatchedBy(func(input emailProvider.SendEmailInput) bool {
		return input.To == "a@x.com" &&
			input.Subject == "Please Confirm you email" &&
			input.Body == `<a href="http://localhost/confirm/tok">link</a>`
	})).Return(nil)

	s := newEmailSender(sender, testEmailConfig(t))

	err := s.SendConfirmationEmail(context.Background(), "a@x.com", "http://localhost/confirm/tok")
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSendPasswordResetEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.MatchedBy(func(input emailProvider.SendEmailInput) bool {
		return input.To == "a@x.com" && input.Subject == "Please reset requested"
	})).Return(nil)

	s := newEmailSender(sender, testEmailConfig(t))

	err := s.SendPasswordResetEmail(context.Background(), "a@x.com", "http://localhost/reset/tok")
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSendConfirmationEmailMissingTemplate(t *testing.T) {
	cfg := testEmailConfig(t)
	cfg.Templates.Confirmation = "missing.html"

	s := newEmailSender(new(mock_email.EmailSender), cfg)

	err := s.SendConfirmationEmail(context.Background(), "a@x.com", "http://localhost/confirm/tok")
	require.Error(t, err)
}
