package dto

type CourseResponseDTO struct {
	ID         int     `json:"id" example:"42"`
	Title      string  `json:"title" example:"Practical SQL"`
	Price      float64 `json:"price" example:"120"`
	AccessDays *int    `json:"access_days,omitempty" example:"180"`
}

type CourseAccessResponseDTO struct {
	CourseID  int  `json:"course_id" example:"42"`
	HasAccess bool `json:"has_access" example:"true"`
}
