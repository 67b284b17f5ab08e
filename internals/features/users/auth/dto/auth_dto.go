// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	model "attendanceku_backend/internals/features/users/auth/model"
)

/* =========================================================
   SIGNUP / SIGNIN
   ========================================================= */

type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"omitempty,max=50"`
}

func (in *SignUpRequest) ToModel(hashed string) *model.UserModel {
	return &model.UserModel{
		UserUsername: strings.TrimSpace(in.Username),
		UserPassword: hashed,
		UserName:     strings.TrimSpace(in.Name),
	}
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
