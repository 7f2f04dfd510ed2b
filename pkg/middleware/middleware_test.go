package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/authenticating"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 1, UserRoleID: RoleAdmin}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{name: "rota pública", path: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "métricas", path: "/metrics", wantStatus: http.StatusNoContent},
		{name: "sem header", path: "/v1/targets", wantStatus: http.StatusUnauthorized},
		{name: "sem bearer", path: "/v1/targets", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "token expirado",
			path:       "/v1/targets",
			header:     "Bearer expired",
			validator:  fakeValidator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "token válido", path: "/v1/targets", header: "Bearer ok", validator: fakeValidator{claims: claims}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validator.claims != nil {
				assert.Equal(t, claims, got)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "sem usuário", middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
		{name: "booker em rota de todos", claims: &domain.Claims{UserRoleID: RoleBooker}, middleware: AllRoles(), wantStatus: http.StatusNoContent},
		{name: "booker em rota de supervisor", claims: &domain.Claims{UserRoleID: RoleBooker}, middleware: AdminOrSupervisor(), wantStatus: http.StatusForbidden},
		{name: "supervisor em rota de admin", claims: &domain.Claims{UserRoleID: RoleSupervisor}, middleware: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "admin", claims: &domain.Claims{UserRoleID: RoleAdmin}, middleware: AdminOnly(), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/targets", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithUser(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"https://targets.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/targets", nil)
	req.Header.Set("Origin", "https://targets.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://targets.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/targets", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(LoggingMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/targets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_DomainFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	original := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(original)
	log.Setup("info")

	claims := &domain.Claims{UserID: 7, UserRoleID: RoleSupervisor}
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AnnotateRequest(r.Context(), log.Fields{"target_id": "T001", "period": "2024-06"})
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware()(AuthMiddleware(fakeValidator{claims: claims})(annotated))

	req := httptest.NewRequest(http.MethodGet, "/v1/targets/T001", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "target_id=T001")
	assert.Contains(t, buf.String(), "period=2024-06")
	assert.Contains(t, buf.String(), "user_id=7")
	assert.Contains(t, buf.String(), "user_role=2")
}

func TestAnnotateRequest_WithoutLogging(t *testing.T) {
	assert.NotPanics(t, func() {
		AnnotateRequest(context.Background(), log.Fields{"target_id": "T001"})
	})
}
