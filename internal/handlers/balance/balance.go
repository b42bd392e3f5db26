package balance

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
	"github.com/coursemart/coursemart/internal/service/ledgerservice"
	"github.com/coursemart/coursemart/pkg/auth"
	"github.com/coursemart/coursemart/pkg/utils"
)

type Service interface {
	GetSummary(ctx context.Context, userID int) (*domain.BalanceSummary, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.BalanceTransaction, error)
	AdminAdjust(ctx context.Context, adminID, userID int, amount float64, txType string) (*domain.BalanceTransaction, error)
}

type BalanceHandler struct {
	ledgerService Service
	validate      *validator.Validate
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
		validate:      validator.New(),
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current balance with earned, withdrawn and pending-withdrawal totals for the authenticated user
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.ledgerService.GetSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceSummaryResponseDTO{
		Current:           summary.Balance,
		TotalEarned:       summary.TotalEarned,
		TotalWithdrawn:    summary.TotalWithdrawn,
		PendingWithdrawal: summary.PendingWithdrawal,
	})
}

// GetTransactions godoc
//
//	@Summary		Get balance transaction history
//	@Description	List the authenticated user's ledger entries, newest first
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Amount:        tx.Amount,
			Type:          tx.Type,
			Source:        tx.Source,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			CreatedAt:     tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AdminAdjust godoc
//
//	@Summary		Adjust a user balance (admin)
//	@Description	Apply a manual credit or debit to a user's balance; recorded as an admin_adjustment ledger entry
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User id"
//	@Param			request	body		dto.AdminAdjustRequestDTO	true	"Adjustment payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/balance [post]
func (h *BalanceHandler) AdminAdjust(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.AdminAdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	tx, err := h.ledgerService.AdminAdjust(r.Context(), adminID, userID, req.Amount, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds), errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		Amount:        tx.Amount,
		Type:          tx.Type,
		Source:        tx.Source,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		CreatedAt:     tx.CreatedAt,
	})
}
