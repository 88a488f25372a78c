package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"textgate/internal/domain/entity"
	"textgate/internal/domain/repository"
)

// Error definitions for auth usecase
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrSessionInvalid     = errors.New("session invalid or expired")
	ErrWeakPassword       = errors.New("password too short")
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// SessionOutput is returned on successful login or registration.
type SessionOutput struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SessionCache caches token-to-user lookups in front of the session
// store. Implementations may be absent; the usecase works without one.
type SessionCache interface {
	Get(ctx context.Context, token string) (string, bool)
	Set(ctx context.Context, token, userID string, ttl time.Duration)
	Delete(ctx context.Context, token string)
}

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(ctx context.Context, username, email, password string) (*SessionOutput, error)
	Login(ctx context.Context, username, password string) (*SessionOutput, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

type authUsecase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cache       SessionCache
	sessionTTL  time.Duration
}

// NewAuthUsecase creates a new auth usecase. cache may be nil.
func NewAuthUsecase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cache SessionCache, sessionTTL time.Duration) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cache:       cache,
		sessionTTL:  sessionTTL,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*SessionOutput, error) {
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(username, email, string(hash))
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*SessionOutput, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.openSession(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if u.cache != nil {
		u.cache.Delete(ctx, token)
	}
	return u.sessionRepo.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its user. Expired sessions are
// removed on sight so the store does not accumulate dead tokens.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	if u.cache != nil {
		if userID, ok := u.cache.Get(ctx, token); ok {
			if id, err := uuid.Parse(userID); err == nil {
				user, err := u.userRepo.GetByID(ctx, id)
				if err != nil {
					return nil, err
				}
				if user != nil {
					return user, nil
				}
			}
		}
	}

	session, err := u.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionInvalid
	}
	if session.Expired() {
		_ = u.sessionRepo.Delete(ctx, token)
		return nil, ErrSessionInvalid
	}

	user, err := u.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionInvalid
	}

	if u.cache != nil {
		u.cache.Set(ctx, token, user.ID.String(), cacheTTL(session))
	}

	return user, nil
}

func (u *authUsecase) openSession(ctx context.Context, user *entity.User) (*SessionOutput, error) {
	session, err := entity.NewSession(user.ID, u.sessionTTL)
	if err != nil {
		return nil, err
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return &SessionOutput{Token: session.Token, Username: user.Username}, nil
}

// cacheTTL bounds cache staleness to a minute, never past session expiry.
func cacheTTL(session *entity.Session) time.Duration {
	ttl := time.Minute
	if remaining := time.Until(session.ExpiresAt); remaining < ttl {
		ttl = remaining
	}
	return ttl
}
