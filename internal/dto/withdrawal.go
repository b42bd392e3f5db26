package dto

import "time"

type WithdrawalRequestDTO struct {
	Amount      float64 `json:"amount" validate:"required,gt=0" example:"50"`
	BankAccount string  `json:"bank_account" validate:"required,min=10,max=32" example:"4561261212345467"`
}

type WithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"11"`
	Amount      float64    `json:"amount" example:"50"`
	BankAccount string     `json:"bank_account" example:"4561261212345467"`
	Status      string     `json:"status" example:"pending"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AdminWithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"11"`
	UserID      int        `json:"user_id" example:"3"`
	Amount      float64    `json:"amount" example:"50"`
	BankAccount string     `json:"bank_account" example:"4561261212345467"`
	Status      string     `json:"status" example:"pending"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type WithdrawalDecisionRequestDTO struct {
	AdminNotes string `json:"admin_notes" example:"payout reference mismatch"`
}
