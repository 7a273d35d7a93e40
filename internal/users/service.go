package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/2beens/physiq/internal/telemetry/tracing"
	"github.com/2beens/physiq/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongCredentials   = errors.New("wrong credentials")
)

const minPasswordLength = 8

type usersRepo interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUser(ctx context.Context, id int) (*User, error)
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpsertProfile(ctx context.Context, p Profile) (*Profile, error)
}

type Service struct {
	repo usersRepo
	// ability to inject a cheaper hash func in tests
	HashPasswordFunc func(password string) (string, error)
}

func NewService(repo usersRepo) *Service {
	return &Service{
		repo:             repo,
		HashPasswordFunc: pkg.HashPassword,
	}
}

// Register creates the user together with a default, incomplete profile.
func (s *Service) Register(ctx context.Context, username, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidCredentials, minPasswordLength)
	}

	hash, err := s.HashPasswordFunc(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, username, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))

	if _, err := s.repo.UpsertProfile(ctx, NewProfile(user.ID)); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.authenticate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongCredentials
	}
	return user, nil
}

func (s *Service) User(ctx context.Context, userID int) (*User, error) {
	return s.repo.GetUser(ctx, userID)
}

// Profile returns the stored profile, or the default one if the user never saved it.
func (s *Service) Profile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			defaultProfile := NewProfile(userID)
			return &defaultProfile, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if p.Gender == "" {
		p.Gender = "male"
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = "moderate"
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.repo.UpsertProfile(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return saved, nil
}

func validateUsername(username string) error {
	if len(username) < 3 || len(username) > 32 {
		return fmt.Errorf("%w: username must have 3 to 32 characters", ErrInvalidCredentials)
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' && r != '-' {
			return fmt.Errorf("%w: username contains %q", ErrInvalidCredentials, r)
		}
	}
	return nil
}
