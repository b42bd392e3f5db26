package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" validate:"required,email" example:"student@example.com"`
	Password     string `json:"password" validate:"required,min=8"`
	ReferralCode string `json:"referral_code,omitempty" validate:"omitempty,min=6,max=64" example:"a1b2c3d4e5f6"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	ReferralCode string `json:"referral_code" example:"a1b2c3d4e5f6"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,email" example:"student@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
