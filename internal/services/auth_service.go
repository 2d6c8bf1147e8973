package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login, without saying which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the catalog administrator and issues the tokens
// required by the admin routes.
type AuthService struct {
	adminUsername     string
	adminPasswordHash []byte
	jwtSecret         []byte
	tokenDurat        time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService for a single admin account whose
// password is stored as a bcrypt hash.
func NewAuthService(adminUsername, adminPasswordHash, jwtSecret string) *AuthService {
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: []byte(adminPasswordHash),
		jwtSecret:         []byte(jwtSecret),
		tokenDurat:        24 * time.Hour,
	}
}

// LoginAdmin checks the admin credentials and returns a signed JWT if they match.
func (s *AuthService) LoginAdmin(username, password string) (string, error) {
	if len(s.adminPasswordHash) == 0 || username != s.adminUsername {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     "admin",
		"exp":      now.Add(s.tokenDurat).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	log.Printf("Admin %s logged in", username)
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if it
// carries the admin role.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims["role"] != "admin" {
		return nil, fmt.Errorf("invalid token: missing admin role")
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash to configure as the admin password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", invalidArgument("Password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
