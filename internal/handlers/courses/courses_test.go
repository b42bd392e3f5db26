package courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/dto"
	"github.com/coursemart/coursemart/pkg/auth"
)

func NewMock(t *testing.T) (*CoursesHandler, *MockCourseRepo, *MockAccessChecker) {
	ctrl := gomock.NewController(t)
	courseRepo := NewMockCourseRepo(ctrl)
	access := NewMockAccessChecker(ctrl)
	handler := New(courseRepo, access)
	defer ctrl.Finish()
	return handler, courseRepo, access
}

func TestList(t *testing.T) {
	handler, courseRepo, _ := NewMock(t)
	accessDays := 180

	t.Run("Courses found", func(t *testing.T) {
		courseRepo.EXPECT().List(gomock.Any()).Return([]domain.Course{
			{ID: 42, Title: "Go for Backend Engineers", Price: 120.0, AccessDays: &accessDays},
			{ID: 43, Title: "Intro to SQL", Price: 0.0},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.CourseResponseDTO
		err := json.NewDecoder(w.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, 180, *resp[0].AccessDays)
		assert.Nil(t, resp[1].AccessDays)
	})

	t.Run("Internal error", func(t *testing.T) {
		courseRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		r := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAccess(t *testing.T) {
	handler, _, access := NewMock(t)

	tests := []struct {
		name           string
		courseID       string
		prepareMock    func()
		expectedStatus int
		hasAccess      bool
	}{
		{
			name:     "Access granted",
			courseID: "42",
			prepareMock: func() {
				access.EXPECT().HasAccess(gomock.Any(), 3, 42).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			hasAccess:      true,
		},
		{
			name:     "Access denied",
			courseID: "42",
			prepareMock: func() {
				access.EXPECT().HasAccess(gomock.Any(), 3, 42).Return(false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid course id",
			courseID:       "abc",
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "Internal error",
			courseID: "42",
			prepareMock: func() {
				access.EXPECT().HasAccess(gomock.Any(), 3, 42).Return(false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.courseID)
			ctx := context.WithValue(context.Background(), auth.UserIDKey, 3)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

			r := httptest.NewRequest(http.MethodGet, "/api/courses/"+tt.courseID+"/access", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.Access(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp dto.CourseAccessResponseDTO
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 42, resp.CourseID)
				assert.Equal(t, tt.hasAccess, resp.HasAccess)
			}
		})
	}
}
