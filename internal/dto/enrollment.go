package dto

import "time"

type SubmitEnrollmentRequestDTO struct {
	CourseID           int      `json:"course_id" validate:"required,gt=0" example:"42"`
	PaymentScreenshots []string `json:"payment_screenshots" validate:"required,min=1,dive,url"`
	ReferralCode       string   `json:"referral_code,omitempty" validate:"omitempty,min=6,max=64"`
}

type EnrollmentRequestResponseDTO struct {
	ID                 int       `json:"id" example:"7"`
	CourseID           int       `json:"course_id" example:"42"`
	Status             string    `json:"status" example:"pending"`
	PaymentScreenshots []string  `json:"payment_screenshots"`
	CreatedAt          time.Time `json:"created_at"`
}

type AdminEnrollmentRequestDTO struct {
	ID                 int       `json:"id" example:"7"`
	UserID             int       `json:"user_id" example:"3"`
	CourseID           int       `json:"course_id" example:"42"`
	Status             string    `json:"status" example:"pending"`
	PaymentScreenshots []string  `json:"payment_screenshots"`
	ReferralCode       string    `json:"referral_code,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type EnrollmentResponseDTO struct {
	CourseID  int        `json:"course_id" example:"42"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
