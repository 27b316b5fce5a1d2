package request

// Empty fields mean "keep the current value".
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"omitempty"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

type AdminUpdateUserRequest struct {
	Name  string `json:"name" binding:"omitempty"`
	Email string `json:"email" binding:"omitempty,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
