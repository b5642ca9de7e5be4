package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JordanPiper315/techNotesBackend/internal/config"
	"github.com/JordanPiper315/techNotesBackend/internal/domain"
	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// AuthServiceImpl implements the domain.AuthService interface. Refresh
// tokens are rotated on use and revoked tokens land in the TokenStore
// denylist until they would have expired anyway.
type AuthServiceImpl struct {
	users      domain.UserRepository
	tokens     domain.TokenStore
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(users domain.UserRepository, tokens domain.TokenStore, cfg config.AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:      users,
		tokens:     tokens,
		jwtSecret:  []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}
}

// Login verifies the credentials and mints a token pair. Unknown users, bad
// passwords and inactive accounts all yield the same unauthorized error.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.TokenPair, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, domain.NewPersistenceError("Failed to fetch user", err)
	}
	if user == nil || !user.Active {
		return nil, nil, domain.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, domain.NewUnauthorizedError("Invalid credentials")
	}

	pair, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh rotates a refresh token: the presented token is verified against
// the denylist, revoked, and a fresh pair is minted for its user.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, domain.NewUnauthorizedError("Invalid or expired refresh token")
	}

	revoked, err := s.tokens.IsRevoked(ctx, refreshToken)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to check token", err)
	}
	if revoked {
		return nil, domain.NewUnauthorizedError("Invalid or expired refresh token")
	}

	id, _ := claims["id"].(float64)
	user, err := s.users.FindByID(ctx, uint(id))
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to fetch user", err)
	}
	if user == nil || !user.Active {
		return nil, domain.NewUnauthorizedError("Invalid or expired refresh token")
	}

	if err := s.tokens.Revoke(ctx, refreshToken, remainingValidity(claims)); err != nil {
		return nil, domain.NewPersistenceError("Failed to revoke token", err)
	}
	return s.generateTokenPair(user)
}

// Logout revokes the presented refresh token until its natural expiry.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		// An invalid or already-expired token can do no further harm
		return nil
	}
	if err := s.tokens.Revoke(ctx, refreshToken, remainingValidity(claims)); err != nil {
		return domain.NewPersistenceError("Failed to revoke token", err)
	}
	return nil
}

func (s *AuthServiceImpl) generateTokenPair(user *model.User) (*domain.TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"roles":    []string(user.Roles),
		"typ":      "access",
		"jti":      uuid.NewString(),
		"exp":      now.Add(s.accessTTL).Unix(),
	})
	accessStr, err := access.SignedString(s.jwtSecret)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to sign token", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID,
		"typ": "refresh",
		// jti keeps tokens unique, so a rotated-out token never collides
		// with its replacement in the denylist
		"jti": uuid.NewString(),
		"exp": now.Add(s.refreshTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString(s.jwtSecret)
	if err != nil {
		return nil, domain.NewPersistenceError("Failed to sign token", err)
	}

	return &domain.TokenPair{AccessToken: accessStr, RefreshToken: refreshStr}, nil
}

func (s *AuthServiceImpl) parseToken(tokenString, typ string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != typ {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func remainingValidity(claims jwt.MapClaims) time.Duration {
	exp, _ := claims["exp"].(float64)
	return time.Until(time.Unix(int64(exp), 0))
}
