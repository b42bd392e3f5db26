package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/dto"
	"github.com/coursemart/coursemart/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegister(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful registration",
			body: `{"login": "student@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "student@example.com", "testpassword", "").
					Return(&domain.Profile{ID: 1, Role: "student", ReferralCode: "refcode12345"}, nil)
				service.EXPECT().GenerateToken(1, "student").Return("token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Signup referral code is forwarded",
			body: `{"login": "student@example.com", "password": "testpassword", "referral_code": "refcode12345"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "student@example.com", "testpassword", "refcode12345").
					Return(&domain.Profile{ID: 2, Role: "student", ReferralCode: "owncode67890"}, nil)
				service.EXPECT().GenerateToken(2, "student").Return("token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid request body",
			body:           `{invalid json`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Login is not an email",
			body:           `{"login": "notanemail", "password": "testpassword"}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "Password too short",
			body:           `{"login": "student@example.com", "password": "short"}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Login already taken",
			body: `{"login": "student@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "student@example.com", "testpassword", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Internal error",
			body: `{"login": "student@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "student@example.com", "testpassword", "").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))

				var resp dto.RegisterResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "User successfully registered", resp.Message)
				assert.NotEmpty(t, resp.ReferralCode)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful authentication",
			body: `{"login": "student@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "student@example.com", "testpassword").
					Return(&domain.Profile{ID: 1, Role: "student"}, nil)
				service.EXPECT().GenerateToken(1, "student").Return("token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid request body",
			body:           `{invalid json`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login": "student@example.com", "password": "wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "student@example.com", "wrongpassword").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Error generating token",
			body: `{"login": "student@example.com", "password": "testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "student@example.com", "testpassword").
					Return(&domain.Profile{ID: 1, Role: "student"}, nil)
				service.EXPECT().GenerateToken(1, "student").Return("", errors.New("sign error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))

				var resp dto.LoginResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "User successfully authenticated", resp.Message)
			}
		})
	}
}
