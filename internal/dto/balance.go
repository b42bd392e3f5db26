package dto

import "time"

type BalanceSummaryResponseDTO struct {
	Current           float64 `json:"current" example:"500.5"`
	TotalEarned       float64 `json:"total_earned" example:"650"`
	TotalWithdrawn    float64 `json:"total_withdrawn" example:"149.5"`
	PendingWithdrawal float64 `json:"pending_withdrawal" example:"0"`
}

type TransactionResponseDTO struct {
	Amount        float64   `json:"amount" example:"25"`
	Type          string    `json:"type" example:"credit"`
	Source        string    `json:"source" example:"referral_commission"`
	BalanceBefore float64   `json:"balance_before" example:"475.5"`
	BalanceAfter  float64   `json:"balance_after" example:"500.5"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdminAdjustRequestDTO struct {
	Amount float64 `json:"amount" validate:"required,gt=0" example:"50"`
	Type   string  `json:"type" validate:"required,oneof=credit debit" example:"credit"`
}
