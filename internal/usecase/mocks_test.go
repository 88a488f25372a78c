package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"textgate/internal/domain/entity"
	"textgate/pkg/provider"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUsageRepository is a mock implementation of UsageRepository
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) GetByUserAndAPI(ctx context.Context, userID uuid.UUID, apiName string) (*entity.UsageRecord, error) {
	args := m.Called(ctx, userID, apiName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UsageRecord), args.Error(1)
}

func (m *MockUsageRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UsageRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UsageRecord), args.Error(1)
}

func (m *MockUsageRepository) Create(ctx context.Context, record *entity.UsageRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUsageRepository) Update(ctx context.Context, record *entity.UsageRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockProviderCaller is a mock implementation of service.ProviderCaller
type MockProviderCaller struct {
	mock.Mock
}

func (m *MockProviderCaller) Call(ctx context.Context, id provider.ID, apiKey, text string) (json.RawMessage, error) {
	args := m.Called(ctx, id, apiKey, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockSessionCache is a mock implementation of SessionCache
type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) Get(ctx context.Context, token string) (string, bool) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1)
}

func (m *MockSessionCache) Set(ctx context.Context, token, userID string, ttl time.Duration) {
	m.Called(ctx, token, userID, ttl)
}

func (m *MockSessionCache) Delete(ctx context.Context, token string) {
	m.Called(ctx, token)
}
