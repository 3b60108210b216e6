package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL = time.Hour // 1 hour

	// Fallback when auth.signing_key is absent from the config file.
	defaultSigningKey = "asd234asd"
)

// Default accounts seeded on first startup.
var defaultUsers = []struct {
	username string
	password string
	email    string
	role     string
}{
	{username: "admin", password: "admin123", email: "admin@portfolio.com", role: models.RoleAdmin},
	{username: "user", password: "user123", email: "user@portfolio.com", role: models.RoleUser},
}

// AuthService handles credential verification and token issuance.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users) *AuthService {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		key = defaultSigningKey
	}
	return &AuthService{users: users, signingKey: []byte(key)}
}

// Claims defines JWT claims. Subject carries the username.
type Claims struct {
	jwt.RegisteredClaims
	Role   string `json:"role"`
	UserID int64  `json:"user_id"`
}

// Login verifies the credentials and returns a signed token plus the
// identity fields the client needs. Unknown usernames and wrong passwords
// fail identically.
func (s *AuthService) Login(username, password string) (models.LoginResponse, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return models.LoginResponse{}, err
	}
	if u == nil {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		Token:    token,
		Role:     u.Role,
		Username: u.Username,
		UserID:   u.ID,
	}, nil
}

// ParseToken validates a JWT and returns the username it was issued for.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// InitializeDefaultUsers seeds the two canonical accounts if absent. Safe to
// invoke on every process start: existing accounts are left untouched.
func (s *AuthService) InitializeDefaultUsers() error {
	for _, seed := range defaultUsers {
		exists, err := s.users.ExistsByUsername(seed.username)
		if err != nil {
			return fmt.Errorf("check seed user %q: %w", seed.username, err)
		}
		if exists {
			continue
		}

		hash, err := hashPassword(seed.password)
		if err != nil {
			return fmt.Errorf("hash seed password for %q: %w", seed.username, err)
		}
		if _, err := s.users.Create(models.User{
			Username:     seed.username,
			PasswordHash: hash,
			Email:        seed.email,
			Role:         seed.role,
			Active:       true,
		}); err != nil {
			return fmt.Errorf("create seed user %q: %w", seed.username, err)
		}
	}
	return nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT bound to the authenticated identity
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:   u.Role,
		UserID: u.ID,
	})
	return token.SignedString(s.signingKey)
}
