package service

import (
	"context"
	"errors"
	"fmt"

	"aurora_backend/internal/common"
	"aurora_backend/internal/common/security"
	"aurora_backend/internal/domain/model"
	"aurora_backend/internal/domain/repository"

	"github.com/google/uuid"
)

// UserService is the user directory: registration, login verification,
// listing and promotion.
type UserService struct {
	userRepo repository.UserRepository
	hasher   *security.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher *security.PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries what a successful login reveals about the account.
// The password digest never leaves the service.
type LoginResult struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s *UserService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", fmt.Errorf("username, email and password are required: %w", common.ErrBadRequest)
	}
	role := req.Role
	if role == "" {
		role = model.RoleClient
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email/username.
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

// Authenticate looks the account up by email before verifying the password,
// so an unknown email and a wrong password stay distinguishable to callers.
func (s *UserService) Authenticate(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.HashedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, common.ErrInvalidPassword
	}

	return &LoginResult{Username: user.Username, Role: user.Role}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Promote sets the role to admin unconditionally; promoting an admin again
// is a no-op success.
func (s *UserService) Promote(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRole(ctx, userID, model.RoleAdmin); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to promote user: %w", err)
	}
	return nil
}
