package dto

import (
	"strings"

	"skm_backend/internals/features/users/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=225"`
	Password string `json:"password" validate:"required,min=1,max=225"`
	Name     string `json:"name" validate:"required,min=1,max=225"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=225"`
	Password string `json:"password" validate:"required,min=1,max=225"`
}

type AdminRegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=225"`
	Password string `json:"password" validate:"required,min=1,max=225"`
	Name     string `json:"name" validate:"required,min=1,max=225"`
	Role     string `json:"role" validate:"required,oneof=USER ADMIN SUPER_ADMIN"`
}

func (r *AdminRegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

type CaptchaRequest struct {
	Token string `json:"token" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		ID:    m.ID,
		Email: m.Email,
		Name:  m.Name,
		Role:  m.Role,
	}
}

func FromUserModels(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromUserModel(r))
	}
	return out
}
