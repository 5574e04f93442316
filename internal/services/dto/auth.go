package dto

import "hiringbooth/internal/models"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Role     string `json:"role" binding:"required" validate:"required,is-user-role"`
	// Для соискателя
	FullName string `json:"full_name"`
	// Для работодателя
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	// Warning заполняется, когда регистрация прошла, но OTP-письмо не ушло
	Warning string `json:"warning,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	Code  string `json:"code" binding:"required" validate:"required,len=6"`
}

type ResendOTPRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type UserResponse struct {
	ID             string                 `json:"id"`
	Email          string                 `json:"email"`
	Role           models.UserRole        `json:"role"`
	IsVerified     bool                   `json:"is_verified"`
	IsApproved     bool                   `json:"is_approved"`
	IsActive       bool                   `json:"is_active"`
	Profile        *models.UserProfile    `json:"profile,omitempty"`
	CompanyProfile *models.CompanyProfile `json:"company_profile,omitempty"`
}
