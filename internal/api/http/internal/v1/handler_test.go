package v1

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/domain"
	"github.com/arco-app/backend/internal/service"
	"github.com/arco-app/backend/pkg/auth"
	"github.com/arco-app/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput, userAgent string, userIP string) (*service.Tokens, error) {
	args := m.Called(ctx, input)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*service.Tokens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email string, password string, userAgent string, userIP string) (*service.Tokens, error) {
	args := m.Called(ctx, email, password)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*service.Tokens), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockAuthService) ConfirmEmail(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockAuthService) VerifyResetToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

type mockNewsService struct {
	mock.Mock
}

func (m *mockNewsService) TopNews(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if news := args.Get(0); news != nil {
		return news.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPersonsService struct {
	mock.Mock
}

func (m *mockPersonsService) GetAll(ctx context.Context) ([]domain.Person, error) {
	args := m.Called(ctx)
	if persons := args.Get(0); persons != nil {
		return persons.([]domain.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonsService) GetBySlug(ctx context.Context, slug string) (*domain.Person, error) {
	args := m.Called(ctx, slug)
	if person := args.Get(0); person != nil {
		return person.(*domain.Person), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPersonsService) Create(ctx context.Context, person *domain.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

// --- fixture ---

type apiFixture struct {
	router  *gin.Engine
	auth    *mockAuthService
	news    *mockNewsService
	persons *mockPersonsService
	tokens  auth.TokenManager
	cfg     *config.Config
}

const resetFormTemplate = `reset {{.Token}}{{if .Error}} error {{.Error}}{{end}}`

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	tokenManager, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 240 * time.Hour,
		SigningKey:      "test-signing-key",
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.BaseURL = "http://localhost:8080"
	cfg.App.LoginURL = "http://localhost:3000/login"

	f := &apiFixture{
		auth:    new(mockAuthService),
		news:    new(mockNewsService),
		persons: new(mockPersonsService),
		tokens:  tokenManager,
		cfg:     cfg,
	}

	services := &service.Services{
		Auth:    f.auth,
		News:    f.news,
		Persons: f.persons,
	}

	handler := NewHandler(services, tokenManager, cfg)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("reset_form.html").Parse(resetFormTemplate)))
	handler.Init(router.Group("/api"))

	f.router = router

	return f
}

func (f *apiFixture) do(t *testing.T, method, target, body string, headers ...http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, values := range h {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}
