package services_test

import (
	"fmt"
	"testing"
	"time"

	"toko-core/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func newTestAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return services.NewAuthService("admin", string(hash), testJWTSecret)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	authService := newTestAuthService(t)

	token, err := authService.LoginAdmin("admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["role"])

	// Wrong password
	_, err = authService.LoginAdmin("admin", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user gets the same error
	_, err = authService.LoginAdmin("someone", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginAdmin_NoPasswordConfigured(t *testing.T) {
	authService := services.NewAuthService("admin", "", testJWTSecret)

	_, err := authService.LoginAdmin("admin", "")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newTestAuthService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"exp":      jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])

	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Signed with another secret
	otherSecret, _ := token.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(otherSecret)
	assert.Error(t, err)

	// Expired
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"exp":      jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Valid signature but no admin role
	userToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"exp":      jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	userTokenString, _ := userToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(userTokenString)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	_, err = services.HashPassword("")
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}
