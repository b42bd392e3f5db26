package enrollment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/dto"
	"github.com/coursemart/coursemart/internal/service/enrollservice"
	"github.com/coursemart/coursemart/pkg/auth"
	"github.com/coursemart/coursemart/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, userID, courseID int, screenshots []string, referralCode string) (*domain.EnrollmentRequest, error)
	Approve(ctx context.Context, requestID, adminID int) (*domain.Enrollment, *domain.BalanceTransaction, error)
	Reject(ctx context.Context, requestID, adminID int) (*domain.EnrollmentRequest, error)
	ListRequests(ctx context.Context, status string) ([]domain.EnrollmentRequest, error)
	ListUserRequests(ctx context.Context, userID int) ([]domain.EnrollmentRequest, error)
}

type EnrollmentHandler struct {
	enrollService Service
	validate      *validator.Validate
}

func New(enrollService Service) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollService: enrollService,
		validate:      validator.New(),
	}
}

// Submit godoc
//
//	@Summary		Submit an enrollment request
//	@Description	Create a pending enrollment request for a course with payment evidence; an admin decides it later
//	@Tags			Enrollment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitEnrollmentRequestDTO	true	"Enrollment request payload"
//	@Success		201		{object}	dto.EnrollmentRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Duplicate request or active enrollment"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Course not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/enrollment-requests [post]
func (h *EnrollmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitEnrollmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	request, err := h.enrollService.Submit(r.Context(), userID, req.CourseID, req.PaymentScreenshots, req.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, enrollservice.ErrCourseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrollservice.ErrAlreadyEnrolled), errors.Is(err, enrollservice.ErrRequestExists):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.EnrollmentRequestResponseDTO{
		ID:                 request.ID,
		CourseID:           request.CourseID,
		Status:             request.Status,
		PaymentScreenshots: request.PaymentScreenshots,
		CreatedAt:          request.CreatedAt,
	})
}

// GetRequests godoc
//
//	@Summary		Get own enrollment requests
//	@Description	List the authenticated user's enrollment requests, newest first
//	@Tags			Enrollment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.EnrollmentRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/enrollment-requests [get]
func (h *EnrollmentHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.enrollService.ListUserRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch enrollment requests")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Enrollment requests not found")
		return
	}

	response := make([]dto.EnrollmentRequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.EnrollmentRequestResponseDTO{
			ID:                 req.ID,
			CourseID:           req.CourseID,
			Status:             req.Status,
			PaymentScreenshots: req.PaymentScreenshots,
			CreatedAt:          req.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AdminList godoc
//
//	@Summary		List enrollment requests (admin)
//	@Description	List enrollment requests filtered by status, pending by default
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"	Enums(pending, approved, rejected)
//	@Success		200		{array}		dto.AdminEnrollmentRequestDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/enrollment-requests [get]
func (h *EnrollmentHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.enrollService.ListRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch enrollment requests")
		return
	}

	response := make([]dto.AdminEnrollmentRequestDTO, len(requests))
	for i, req := range requests {
		item := dto.AdminEnrollmentRequestDTO{
			ID:                 req.ID,
			UserID:             req.UserID,
			CourseID:           req.CourseID,
			Status:             req.Status,
			PaymentScreenshots: req.PaymentScreenshots,
			CreatedAt:          req.CreatedAt,
		}
		if req.ReferralCode != nil {
			item.ReferralCode = *req.ReferralCode
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve an enrollment request (admin)
//	@Description	Transition a pending request to approved, create the enrollment and attribute the referral commission atomically
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Enrollment request id"
//	@Success		200	{object}	dto.EnrollmentResponseDTO
//	@Failure		400	{object}	utils.Response	"Request is not pending"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/enrollment-requests/{id}/approve [post]
func (h *EnrollmentHandler) Approve(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	enrollment, _, err := h.enrollService.Approve(r.Context(), requestID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, enrollservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrollservice.ErrRequestNotPending):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.EnrollmentResponseDTO{
		CourseID:  enrollment.CourseID,
		ExpiresAt: enrollment.ExpiresAt,
	})
}

// Reject godoc
//
//	@Summary		Reject an enrollment request (admin)
//	@Description	Transition a pending request to rejected; no ledger or enrollment changes
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Enrollment request id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Request is not pending"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/enrollment-requests/{id}/reject [post]
func (h *EnrollmentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	_, err = h.enrollService.Reject(r.Context(), requestID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, enrollservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrollservice.ErrRequestNotPending):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Enrollment request rejected"})
}
