package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(int)
		assert.True(t, ok)
		assert.Equal(t, 123, userID)
		role, ok := r.Context().Value(RoleKey).(string)
		assert.True(t, ok)
		assert.Equal(t, "student", role)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     func() string
		expectedStatus int
	}{
		{
			name: "Valid token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(123, "student", time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			authHeader:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Bearer prefix",
			authHeader:     func() string { return "sometoken" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			authHeader:     func() string { return "Bearer invalid.token.string" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(123, "student", time.Now().Add(-time.Hour))
				return "Bearer " + token
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			if header := tt.authHeader(); header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		ctx            context.Context
		expectedStatus int
	}{
		{
			name:           "Admin passes",
			ctx:            context.WithValue(context.Background(), RoleKey, "admin"),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Student is forbidden",
			ctx:            context.WithValue(context.Background(), RoleKey, "student"),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing role",
			ctx:            context.Background(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals", nil)
			r = r.WithContext(tt.ctx)
			w := httptest.NewRecorder()
			AdminMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
