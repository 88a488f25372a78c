package repository

import (
	"context"

	"github.com/google/uuid"

	"textgate/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update updates a user
	Update(ctx context.Context, user *entity.User) error
}

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, session *entity.Session) error

	// GetByToken retrieves a session by its token
	GetByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes a session by token
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all sessions past their expiry
	DeleteExpired(ctx context.Context) (int64, error)
}

// UsageRepository defines the interface for usage ledger operations
type UsageRepository interface {
	// GetByUserAndAPI retrieves the record for a (user, provider) pair
	GetByUserAndAPI(ctx context.Context, userID uuid.UUID, apiName string) (*entity.UsageRecord, error)

	// ListByUser retrieves all records for a user ordered by api_name
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UsageRecord, error)

	// Create creates a new usage record
	Create(ctx context.Context, record *entity.UsageRecord) error

	// Update updates a usage record
	Update(ctx context.Context, record *entity.UsageRecord) error
}
