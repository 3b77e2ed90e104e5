package dto

import (
	"strings"

	"ecoparking/infras/jwt"
	"ecoparking/internal/domains/admin/model"
	gDto "ecoparking/shared/dto"
	gModel "ecoparking/shared/model"
)

type SeedRequest struct {
	Name           string `json:"name"           validate:"required,max=100"`
	Identification string `json:"identification" validate:"required,max=50"`
	Password       string `json:"password"       validate:"required,min=8"`
}

func (r *SeedRequest) ToModel(actor, hashedPassword string) model.Admin {
	return model.Admin{
		Name:           strings.TrimSpace(r.Name),
		Identification: strings.TrimSpace(r.Identification),
		PasswordHash:   hashedPassword,
		Metadata:       gModel.NewMetadata(actor),
	}
}

type LoginRequest struct {
	Identification string `json:"identification" validate:"required,max=50"`
	Password       string `json:"password"       validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	Admin        AdminResponse `json:"admin"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type AdminResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Identification string `json:"identification"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(m model.Admin) {
	r.ID = m.ID
	r.Name = m.Name
	r.Identification = m.Identification
	r.Metadata.FromModel(m.Metadata)
}
