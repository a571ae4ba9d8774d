package dto

type RegisterRequestDTO struct {
	Email       string `json:"email" validate:"required,email" example:"finder@greenriot.app"`
	Username    string `json:"username" validate:"required,min=3,max=50" example:"streetfinder"`
	DisplayName string `json:"display_name" example:"Street Finder"`
	Password    string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"finder@greenriot.app"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
