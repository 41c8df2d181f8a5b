package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/domain"
	"github.com/arco-app/backend/internal/queue/task"
	"github.com/arco-app/backend/internal/repository"
	"github.com/arco-app/backend/pkg/auth"
	"github.com/arco-app/backend/pkg/hash"
	"github.com/arco-app/backend/pkg/logger"
	"github.com/arco-app/backend/pkg/signer"

	"go.uber.org/zap"
)

type authService struct {
	accountRepository        repository.Accounts
	refreshSessionRepository repository.RefreshSessions
	hasher                   hash.PasswordHasher
	tokenManager             auth.TokenManager
	signer                   *signer.Signer
	queue                    TaskEnqueuer
	authConfig               config.AuthConfig
	appConfig                config.App

	now func() time.Time
}

func newAuthService(accountRepository repository.Accounts,
	refreshSessionRepository repository.RefreshSessions,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	tokenSigner *signer.Signer,
	queue TaskEnqueuer,
	authConfig config.AuthConfig,
	appConfig config.App,
) *authService {
	return &authService{
		accountRepository:        accountRepository,
		refreshSessionRepository: refreshSessionRepository,
		hasher:                   hasher,
		tokenManager:             tokenManager,
		signer:                   tokenSigner,
		queue:                    queue,
		authConfig:               authConfig,
		appConfig:                appConfig,
		now:                      time.Now,
	}
}

// Register creates the profile, status and account records atomically,
// dispatches the confirmation email and logs the new user in.
func (s *authService) Register(ctx context.Context, input RegisterInput, userAgent string, userIP string) (*Tokens, error) {
	_, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get account by email failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	profile := &domain.UserProfile{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		AcceptTOS: true,
	}
	status := &domain.UserAccountStatus{
		Code: domain.StatusCodeEmailNonConfirmed,
		Name: domain.StatusNameEmailNonConfirmed,
	}
	account := &domain.UserAccount{
		Email:    input.Email,
		Username: input.Username,
		Password: passwordHash,
	}

	if err := s.accountRepository.Create(ctx, profile, status, account); err != nil {
		// Two concurrent registrations can pass the existence check; the
		// unique email constraint decides the race.
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create account failed: %w", err)
	}

	s.sendEmailAsync(ctx, task.EmailKindConfirmation, input.Email,
		s.appConfig.BaseURL+"/api/v1/auth/confirm/"+s.signer.Sign(input.Email, s.authConfig.ConfirmationSalt))

	tokens, err := s.createSession(ctx, account.ID, userAgent, userIP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return tokens, nil
}

func (s *authService) Login(ctx context.Context, email string, password string, userAgent string, userIP string) (*Tokens, error) {
	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get account by email failed: %w", err)
	}

	if !s.hasher.Check(account.Password, password) {
		return nil, ErrWrongPassword
	}

	tokens, err := s.createSession(ctx, account.ID, userAgent, userIP)
	if err != nil {
		return nil, fmt.Errorf("create session failed: %w", err)
	}

	return tokens, nil
}

func (s *authService) Logout(ctx context.Context, userID int64) error {
	if err := s.refreshSessionRepository.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete refresh sessions failed: %w", err)
	}

	return nil
}

// ConfirmEmail validates the token against its own encoded subject; no
// session is consulted. Confirming an already confirmed account is a no-op.
func (s *authService) ConfirmEmail(ctx context.Context, token string) error {
	email, err := s.signer.Verify(token, s.authConfig.ConfirmationSalt, s.authConfig.TokenMaxAge)
	if err != nil {
		return ErrInvalidToken
	}

	account, err := s.accountRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}

	if account.Confirmed {
		return nil
	}

	if err := s.accountRepository.Confirm(ctx, email, s.now()); err != nil {
		return fmt.Errorf("confirm account failed: %w", err)
	}

	return nil
}

// RequestPasswordReset always acknowledges, whether or not the email is
// registered; reset links for unknown addresses dead-end at submission.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	s.sendEmailAsync(ctx, task.EmailKindPasswordReset, email,
		s.appConfig.BaseURL+"/api/v1/auth/reset_password/"+s.signer.Sign(email, s.authConfig.ResetSalt))

	return nil
}

// VerifyResetToken decodes a reset token without side effects, for
// rendering the reset form.
func (s *authService) VerifyResetToken(token string) (string, error) {
	email, err := s.signer.Verify(token, s.authConfig.ResetSalt, s.authConfig.TokenMaxAge)
	if err != nil {
		return "", ErrInvalidToken
	}

	return email, nil
}

// ResetPassword sets the new password and re-stamps the confirmation:
// acting on the emailed link also proves control of the address.
func (s *authService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	email, err := s.VerifyResetToken(token)
	if err != nil {
		return err
	}

	if _, err := s.accountRepository.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get account by email failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.accountRepository.UpdatePassword(ctx, email, passwordHash, s.now()); err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, userID int64, userAgent string, userIP string) (*Tokens, error) {
	var (
		res Tokens
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSession := &domain.RefreshSession{
		UserID:       userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    userAgent,
		IP:           userIP,
		ExpiresIn:    s.now().Add(res.RefreshTTL),
	}

	if err := s.refreshSessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

// sendEmailAsync enqueues a delivery job and never fails the request: the
// queue retries delivery, and an enqueue error only loses this one email.
func (s *authService) sendEmailAsync(ctx context.Context, kind string, email string, link string) {
	t, err := task.NewSendEmailTask(kind, email, link)
	if err != nil {
		logger.Error("build send email task failed", zap.String("kind", kind), zap.Error(err))
		return
	}

	if _, err := s.queue.Enqueue(ctx, t); err != nil {
		logger.Error("enqueue send email task failed", zap.String("kind", kind), zap.Error(err))
	}
}
