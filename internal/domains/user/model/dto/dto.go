package dto

import (
	"strings"

	"ecoparking/internal/domains/user/model"
	"ecoparking/shared"
	gDto "ecoparking/shared/dto"
	gModel "ecoparking/shared/model"
)

type RegisterRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Cedula string `json:"cedula" validate:"required,max=50"`
	Email  string `json:"email"  validate:"required,email,max=100"`
	Phone  string `json:"phone"  validate:"omitempty,max=20"`
}

// Normalize trims the input and lowercases the email.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Cedula = strings.TrimSpace(r.Cedula)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *RegisterRequest) ToModel(actor string) model.User {
	return model.User{
		Name:     r.Name,
		Cedula:   r.Cedula,
		Email:    r.Email,
		Phone:    r.Phone,
		Metadata: gModel.NewMetadata(actor),
	}
}

type LoginRequest struct {
	Cedula string `json:"cedula" validate:"required,max=50"`
	Email  string `json:"email"  validate:"required,email,max=100"`
}

func (r *LoginRequest) Normalize() {
	r.Cedula = strings.TrimSpace(r.Cedula)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Cedula string `json:"cedula"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Cedula = model.Cedula
	r.Email = model.Email
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
