package dto

type RegisterRequestDTO struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Specialty string `json:"specialty"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message      string          `json:"message"`
	Professional ProfessionalDTO `json:"professional"`
}

type ProfessionalDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Role      string `json:"role"`
}

type LogoutResponseDTO struct {
	Message string `json:"message"`
}
