package request

// CreateUserRequest represents a staff account creation request
type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=120"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required"`
	Pin      *string `json:"pin" binding:"omitempty,min=4,max=8"`
}

// SetPinRequest represents an admin PIN replacement request
type SetPinRequest struct {
	Pin string `json:"pin" binding:"required,min=4,max=8"`
}

// UpdateUserRequest represents a staff account update request
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=120"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
	Pin      *string `json:"pin" binding:"omitempty,min=4,max=8"`
}
