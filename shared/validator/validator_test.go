package validator_test

import (
	"strings"
	"testing"

	"ecoparking/shared/failure"
	"ecoparking/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Cedula string `json:"cedula" validate:"required,numeric,max=50"`
	Email  string `json:"email" validate:"required,email,max=100"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

type rateRequest struct {
	Rate   decimal.Decimal `json:"rate" validate:"decimal_gt=0"`
	Amount string          `json:"amount" validate:"decimal_gte=0"`
}

func TestValidateStruct(t *testing.T) {
	valid := registerRequest{Name: "Ana Torres", Cedula: "0912345678", Email: "ana@example.com", Rating: 5}

	tests := []struct {
		name    string
		mutate  func(r *registerRequest)
		wantErr string
	}{
		{name: "valid request", mutate: func(_ *registerRequest) {}},
		{name: "missing name", mutate: func(r *registerRequest) { r.Name = "" }, wantErr: "name is required"},
		{name: "cedula with letters", mutate: func(r *registerRequest) { r.Cedula = "09ABC" }, wantErr: "cedula must contain only digits"},
		{name: "invalid email", mutate: func(r *registerRequest) { r.Email = "ana" }, wantErr: "email must be a valid email address"},
		{name: "name too long", mutate: func(r *registerRequest) { r.Name = strings.Repeat("x", 101) }, wantErr: "name must be at most 100 characters"},
		{name: "rating out of range", mutate: func(r *registerRequest) { r.Rating = 6 }, wantErr: "rating must be less than or equal to 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, failure.IsUserError(err))
		})
	}
}

func TestDecimalRules(t *testing.T) {
	tests := []struct {
		name    string
		req     rateRequest
		wantErr bool
	}{
		{name: "positive rate", req: rateRequest{Rate: decimal.RequireFromString("1.50"), Amount: "0"}},
		{name: "zero rate", req: rateRequest{Rate: decimal.Zero, Amount: "1"}, wantErr: true},
		{name: "negative amount", req: rateRequest{Rate: decimal.NewFromInt(2), Amount: "-0.01"}, wantErr: true},
		{name: "amount not a number", req: rateRequest{Rate: decimal.NewFromInt(2), Amount: "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("card", "oneof=card cash"))
	assert.Error(t, validator.ValidateVar("cheque", "oneof=card cash"))
	assert.NoError(t, validator.ValidateVar("2.00", "decimal_gt=0"))
	assert.Error(t, validator.ValidateVar("0.00", "decimal_gt=0"))
	assert.NoError(t, validator.ValidateVar("24", "decimal_lte=24"))
	assert.Error(t, validator.ValidateVar("24.5", "decimal_lte=24"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{name: "valid body", jsonBody: `{"name":"Luis","cedula":"0102030405","email":"luis@example.com","rating":4}`},
		{name: "invalid email", jsonBody: `{"name":"Luis","cedula":"0102030405","email":"luis","rating":4}`, wantErr: true},
		{name: "malformed body", jsonBody: `{"name":`, wantErr: true},
		{name: "empty body", jsonBody: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data registerRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
