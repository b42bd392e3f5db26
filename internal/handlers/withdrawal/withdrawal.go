package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/dto"
	"github.com/coursemart/coursemart/internal/service/withdrawalservice"
	"github.com/coursemart/coursemart/pkg/auth"
	"github.com/coursemart/coursemart/pkg/utils"
	"github.com/coursemart/coursemart/pkg/validate"
)

type Service interface {
	Request(ctx context.Context, userID int, amount float64, bankAccount string) (*domain.WithdrawalRequest, error)
	Approve(ctx context.Context, requestID, adminID int, notes string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID, adminID int, notes string) (*domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
	validate          *validator.Validate
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
		validate:          validator.New(),
	}
}

// Request godoc
//
//	@Summary		Request a withdrawal
//	@Description	Submit a pending cash-out claim against the balance; funds are not debited until an admin approves
//	@Tags			Withdrawal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Insufficient funds, below minimum or pending request exists"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid bank account number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if !validate.IsBankAccount(req.BankAccount) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid bank account number")
		return
	}

	wd, err := h.withdrawalService.Request(r.Context(), userID, req.Amount, req.BankAccount)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrBelowMinimum),
			errors.Is(err, withdrawalservice.ErrInsufficientFunds),
			errors.Is(err, withdrawalservice.ErrPendingExists):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(wd))
}

// GetWithdrawals godoc
//
//	@Summary		Get own withdrawal requests
//	@Description	List the authenticated user's withdrawal requests, newest first
//	@Tags			Withdrawal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Success		204	{object}	utils.Response	"Withdrawals not found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toResponseDTO(&wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AdminList godoc
//
//	@Summary		List withdrawal requests (admin)
//	@Description	List withdrawal requests, optionally filtered by status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"	Enums(pending, approved, rejected, completed)
//	@Success		200		{array}		dto.AdminWithdrawalResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListByStatus(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.AdminWithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		item := dto.AdminWithdrawalResponseDTO{
			ID:          wd.ID,
			UserID:      wd.UserID,
			Amount:      wd.Amount,
			BankAccount: wd.BankAccount,
			Status:      wd.Status,
			ProcessedAt: wd.ProcessedAt,
			CreatedAt:   wd.CreatedAt,
		}
		if wd.AdminNotes != nil {
			item.AdminNotes = *wd.AdminNotes
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a withdrawal request (admin)
//	@Description	Re-validate the amount against the live balance, debit the ledger and complete the request atomically
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Withdrawal request id"
//	@Param			request	body		dto.WithdrawalDecisionRequestDTO	false	"Optional admin notes"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Insufficient funds or request not pending"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req dto.WithdrawalDecisionRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	wd, err := h.withdrawalService.Approve(r.Context(), requestID, adminID, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrRequestNotPending),
			errors.Is(err, withdrawalservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(wd))
}

// Reject godoc
//
//	@Summary		Reject a withdrawal request (admin)
//	@Description	Transition a pending request to rejected; the balance is untouched since nothing was debited at submission. A reason is required.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Withdrawal request id"
//	@Param			request	body		dto.WithdrawalDecisionRequestDTO	true	"Admin notes (required)"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing notes or request not pending"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req dto.WithdrawalDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.AdminNotes) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Admin notes are required")
		return
	}

	wd, err := h.withdrawalService.Reject(r.Context(), requestID, adminID, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrRequestNotPending),
			errors.Is(err, withdrawalservice.ErrNotesRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(wd))
}

func toResponseDTO(wd *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	resp := dto.WithdrawalResponseDTO{
		ID:          wd.ID,
		Amount:      wd.Amount,
		BankAccount: wd.BankAccount,
		Status:      wd.Status,
		ProcessedAt: wd.ProcessedAt,
		CreatedAt:   wd.CreatedAt,
	}
	if wd.AdminNotes != nil {
		resp.AdminNotes = *wd.AdminNotes
	}
	return resp
}
