package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "vagas/internal/errors"
	"vagas/internal/repository"
	"vagas/internal/telemetry"
	tokenIssuer "vagas/pkg/jwt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")

var tracer = telemetry.GetTracer("vagas/core")

// compared against when the email is unknown so both login failures cost the same
var (
	decoyHashOnce sync.Once
	decoyHash     []byte
)

type UserService struct {
	logs     *zap.SugaredLogger
	users    UserRepository
	tokens   TokenIssuer
	tokenTTL time.Duration
	hashCost int
}

func NewUserService(logger *zap.SugaredLogger, users UserRepository, tokens TokenIssuer, tokenTTL time.Duration) *UserService {
	return &UserService{
		logs:     logger,
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register hashes the password and stores a new user.
func (s *UserService) Register(ctx context.Context, reg Registration) (Profile, error) {
	ctx, span := tracer.Start(ctx, "UserService.Register")
	defer span.End()

	reg.Email = normalizeEmail(reg.Email)
	if err := reg.Validate(); err != nil {
		return Profile{}, telemetry.Fail(span, apperrors.InvalidInput(err.Error(), err))
	}

	hash, err := s.hashPassword(reg.Password)
	if err != nil {
		return Profile{}, telemetry.Fail(span, apperrors.Internal("could not register user", err))
	}

	user, err := s.users.CreateUser(ctx, repository.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return Profile{}, telemetry.Fail(span, s.storeError("register user", err))
	}

	s.logs.Infow("user registered", "user_id", user.ID)
	return toProfile(user), nil
}

// Login verifies the credentials and issues a session token. Unknown emails
// and wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, creds Credentials) (Session, error) {
	ctx, span := tracer.Start(ctx, "UserService.Login")
	defer span.End()

	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, telemetry.Fail(span, apperrors.Internal("could not log in", err))
		}
		_ = bcrypt.CompareHashAndPassword(s.decoy(), []byte(creds.Password))
		return Session{}, telemetry.Fail(span, apperrors.Unauthorized(ErrInvalidCredentials.Error(), ErrInvalidCredentials))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		s.logs.Infow("login rejected", "user_id", user.ID)
		return Session{}, telemetry.Fail(span, apperrors.Unauthorized(ErrInvalidCredentials.Error(), ErrInvalidCredentials))
	}

	token, expiresAt, err := s.tokens.Issue(tokenIssuer.TokenInfo{
		UserID:     user.ID,
		Email:      user.Email,
		Expiration: s.tokenTTL,
	})
	if err != nil {
		return Session{}, telemetry.Fail(span, apperrors.Internal("could not log in", fmt.Errorf("issue token: %w", err)))
	}

	span.SetAttributes(attribute.Int64("user.id", int64(user.ID)))
	s.logs.Infow("user logged in", "user_id", user.ID)

	return Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toProfile(user),
	}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]Profile, error) {
	ctx, span := tracer.Start(ctx, "UserService.ListUsers")
	defer span.End()

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, telemetry.Fail(span, s.storeError("list users", err))
	}

	profiles := make([]Profile, len(users))
	for i, user := range users {
		profiles[i] = toProfile(user)
	}
	return profiles, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (Profile, error) {
	ctx, span := tracer.Start(ctx, "UserService.GetUser")
	defer span.End()

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return Profile{}, telemetry.Fail(span, s.storeError("get user", err))
	}
	return toProfile(user), nil
}

// ReplaceUser overwrites name, email and password of an existing user.
func (s *UserService) ReplaceUser(ctx context.Context, id uint, reg Registration) (Profile, error) {
	ctx, span := tracer.Start(ctx, "UserService.ReplaceUser")
	defer span.End()

	reg.Email = normalizeEmail(reg.Email)
	if err := reg.Validate(); err != nil {
		return Profile{}, telemetry.Fail(span, apperrors.InvalidInput(err.Error(), err))
	}

	span.SetAttributes(attribute.Int64("user.id", int64(id)))
	profile, err := s.applyPatch(ctx, id, UserPatch{
		Name:     &reg.Name,
		Email:    &reg.Email,
		Password: &reg.Password,
	})
	if err != nil {
		return Profile{}, telemetry.Fail(span, err)
	}
	return profile, nil
}

// PatchUser changes only the supplied fields. A supplied password is re-hashed.
func (s *UserService) PatchUser(ctx context.Context, id uint, patch UserPatch) (Profile, error) {
	ctx, span := tracer.Start(ctx, "UserService.PatchUser")
	defer span.End()

	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := patch.Validate(); err != nil {
		return Profile{}, telemetry.Fail(span, apperrors.InvalidInput(err.Error(), err))
	}

	span.SetAttributes(attribute.Int64("user.id", int64(id)))
	profile, err := s.applyPatch(ctx, id, patch)
	if err != nil {
		return Profile{}, telemetry.Fail(span, err)
	}
	return profile, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) (Profile, error) {
	ctx, span := tracer.Start(ctx, "UserService.DeleteUser")
	defer span.End()

	user, err := s.users.DeleteUser(ctx, id)
	if err != nil {
		return Profile{}, telemetry.Fail(span, s.storeError("delete user", err))
	}

	s.logs.Infow("user deleted", "user_id", user.ID)
	return toProfile(user), nil
}

// SeedAdmin inserts the bootstrap account when the users table is empty.
func (s *UserService) SeedAdmin(ctx context.Context, reg Registration) error {
	reg.Email = normalizeEmail(reg.Email)
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("validate seed account: %w", err)
	}

	hash, err := s.hashPassword(reg.Password)
	if err != nil {
		return err
	}

	err = s.users.SeedUsers(ctx, []repository.User{{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
	}})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return nil
}

func (s *UserService) applyPatch(ctx context.Context, id uint, patch UserPatch) (Profile, error) {
	changes := repository.UserChanges{
		Name:  patch.Name,
		Email: patch.Email,
	}

	if patch.Password != nil {
		hash, err := s.hashPassword(*patch.Password)
		if err != nil {
			return Profile{}, apperrors.Internal("could not update user", err)
		}
		changes.PasswordHash = &hash
	}

	user, err := s.users.UpdateUser(ctx, id, changes)
	if err != nil {
		return Profile{}, s.storeError("update user", err)
	}

	s.logs.Infow("user updated", "user_id", user.ID, "password_changed", patch.Password != nil)
	return toProfile(user), nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *UserService) decoy() []byte {
	decoyHashOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), s.hashCost)
	})
	return decoyHash
}

func (s *UserService) storeError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return apperrors.NotFound("user not found", err)
	case errors.Is(err, repository.ErrEmailTaken):
		return apperrors.Conflict("email already registered", err)
	}
	s.logs.Errorw("user store failure", "operation", op, "error", err)
	return apperrors.Internal("could not "+op, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
