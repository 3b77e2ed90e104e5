package jwt_test

import (
	"testing"

	"ecoparking/config"
	"ecoparking/infras/jwt"
	"ecoparking/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(accessMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "ecoparking"
	cfg.JWT.AccessSecret = "access-test-secret"
	cfg.JWT.RefreshSecret = "refresh-test-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService(15)

	pair, err := svc.GenerateTokenPair(jwt.Subject{ID: 1, Name: "Administrador", Identification: "0999999999", Role: constant.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)
	assert.Equal(t, constant.RoleAdmin, claims.Role)
	assert.Equal(t, "1", claims.Subject)
}

func TestValidateRejectsWrongType(t *testing.T) {
	svc := newService(15)

	pair, err := svc.GenerateTokenPair(jwt.Subject{ID: 1, Role: constant.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	svc := newService(-1)

	pair, err := svc.GenerateTokenPair(jwt.Subject{ID: 1})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := newService(15)

	pair, err := svc.GenerateTokenPair(jwt.Subject{ID: 7, Name: "Admin"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.AdminID)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Token abc")
	assert.ErrorIs(t, err, jwt.ErrMalformedBearer)
}
