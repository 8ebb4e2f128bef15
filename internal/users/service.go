// Package users registers accounts and verifies their passwords.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reading-prefs-go/internal/common"
	"reading-prefs-go/internal/logging"
	"reading-prefs-go/internal/models"
)

const (
	HashCost          = 10
	MinPasswordLength = 6
)

type Service struct {
	repo Repository
	log  logging.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// NormalizeEmail lowercases and trims an address. Register and Login both
// look users up by the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register hashes password and stores a new user. The plaintext never
// reaches the repository.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("Email and password required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, common.NewValidationError(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, common.NewValidationError("Password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return redact(u), nil
}

// Login returns the user owning email if password matches its hash.
// Unknown emails and wrong passwords both yield common.ErrAuthFailure.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("Email and password required")
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		// burn a comparison so unknown emails cost about as much as bad passwords
		_ = bcrypt.CompareHashAndPassword(s.fakeHash(), []byte(password))
		return nil, common.ErrAuthFailure
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrAuthFailure
	}
	return redact(u), nil
}

// redact returns a copy of u without its password hash.
func redact(u *models.User) *models.User {
	out := *u
	out.PasswordHash = ""
	return &out
}

func (s *Service) fakeHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), HashCost)
	})
	return s.dummyHash
}
