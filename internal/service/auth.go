package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/repository"
)

const minAccountPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("email is not a valid address")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already taken")
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles account registration and login.
type AuthService struct {
	users     UserStore
	hasher    *crypto.Hasher
	tokens    *crypto.TokenIssuer
	maxAmount int
}

// NewAuthService creates a new AuthService. maxAmount is the batch limit
// reported to authenticated accounts.
func NewAuthService(users UserStore, hasher *crypto.Hasher, tokens *crypto.TokenIssuer, maxAmount int) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		maxAmount: maxAmount,
	}
}

// Register creates a new account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	email := normalizeEmail(creds.Email)
	if email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.AuthResponse{}, ErrEmailInvalid
	}
	if creds.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if len([]rune(creds.Password)) < minAccountPasswordLength {
		return model.AuthResponse{}, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{Email: email, AuthHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates an account and returns an auth token.
func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := s.hasher.Verify(creds.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetUser returns the public view of an account.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return s.userResponse(user), nil
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      s.userResponse(user),
	}, nil
}

func (s *AuthService) userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		MaxAmount: s.maxAmount,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
