package courses

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/dto"
	"github.com/coursemart/coursemart/pkg/auth"
	"github.com/coursemart/coursemart/pkg/utils"
)

type CourseRepo interface {
	List(ctx context.Context) ([]domain.Course, error)
}

type AccessChecker interface {
	HasAccess(ctx context.Context, userID, courseID int) (bool, error)
}

type CoursesHandler struct {
	courseRepo CourseRepo
	access     AccessChecker
}

func New(courseRepo CourseRepo, access AccessChecker) *CoursesHandler {
	return &CoursesHandler{
		courseRepo: courseRepo,
		access:     access,
	}
}

// List godoc
//
//	@Summary		List courses
//	@Description	List the course catalog, newest first
//	@Tags			Courses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CourseResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses [get]
func (h *CoursesHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseRepo.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	response := make([]dto.CourseResponseDTO, len(courses))
	for i, course := range courses {
		response[i] = dto.CourseResponseDTO{
			ID:         course.ID,
			Title:      course.Title,
			Price:      course.Price,
			AccessDays: course.AccessDays,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Access godoc
//
//	@Summary		Check course access
//	@Description	Report whether the authenticated user holds a non-expired enrollment for the course
//	@Tags			Courses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Course id"
//	@Success		200	{object}	dto.CourseAccessResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courses/{id}/access [get]
func (h *CoursesHandler) Access(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid course id")
		return
	}

	hasAccess, err := h.access.HasAccess(r.Context(), userID, courseID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CourseAccessResponseDTO{
		CourseID:  courseID,
		HasAccess: hasAccess,
	})
}
