package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/poskit/pos-api/internal/domain/user"
	"github.com/poskit/pos-api/internal/pkg/jwt"
	"github.com/poskit/pos-api/internal/pkg/password"
)

const revokedKeyPrefix = "auth:revoked:"

// Service handles authentication
type Service struct {
	users user.Repository
	jwt   *jwt.Service
	redis *redis.Client // optional; logout revocation is a no-op without it
}

// NewService creates auth service
func NewService(users user.Repository, jwtService *jwt.Service, redisClient *redis.Client) *Service {
	return &Service{users: users, jwt: jwtService, redis: redisClient}
}

// Login verifies credentials and issues an access token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID); err != nil {
		log.Warn().Err(err).Str("user_id", u.ID.String()).Msg("failed to update last login")
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: toUserResponse(u)}, nil
}

// Register creates a staff account and issues an access token
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if existing, err := s.users.GetByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, user.ErrUsernameExists
	}
	if existing, err := s.users.GetByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, user.ErrEmailExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         user.Role(req.Role),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", u.ID.String()).Str("role", req.Role).Msg("user registered")

	return &AuthResponse{Token: token, User: toUserResponse(u)}, nil
}

// GetCurrentUser returns the account behind a token
func (s *Service) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	return toUserResponse(u), nil
}

// Logout revokes the token id until its natural expiry
func (s *Service) Logout(ctx context.Context, jti string) error {
	if s.redis == nil || jti == "" {
		return nil
	}
	return s.redis.Set(ctx, revokedKeyPrefix+jti, "1", s.jwt.AccessTTL()).Err()
}

// IsRevoked implements middleware.TokenRevoker
func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.redis == nil || jti == "" {
		return false, nil
	}
	n, err := s.redis.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func toUserResponse(u *user.User) *UserResponse {
	resp := &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
	if u.LastLoginAt.Valid {
		t := u.LastLoginAt.Time
		resp.LastLoginAt = &t
	}
	return resp
}
