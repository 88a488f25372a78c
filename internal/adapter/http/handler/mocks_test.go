package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"textgate/internal/domain/entity"
	"textgate/internal/usecase"
	"textgate/pkg/provider"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, username, email, password string) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, username, password string) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockDispatchUsecase is a mock implementation of usecase.DispatchUsecase
type MockDispatchUsecase struct {
	mock.Mock
}

func (m *MockDispatchUsecase) Submit(ctx context.Context, user *entity.User, id provider.ID, text string) (*provider.Result, error) {
	args := m.Called(ctx, user, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Result), args.Error(1)
}

// MockProfileUsecase is a mock implementation of usecase.ProfileUsecase
type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) Get(ctx context.Context, user *entity.User) *usecase.ProfileOutput {
	args := m.Called(ctx, user)
	return args.Get(0).(*usecase.ProfileOutput)
}

func (m *MockProfileUsecase) UpdateKeys(ctx context.Context, user *entity.User, input *usecase.UpdateKeysInput) error {
	args := m.Called(ctx, user, input)
	return args.Error(0)
}

// MockUsageUsecase is a mock implementation of usecase.UsageUsecase
type MockUsageUsecase struct {
	mock.Mock
}

func (m *MockUsageUsecase) List(ctx context.Context, userID uuid.UUID) ([]*usecase.UsageOutput, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.UsageOutput), args.Error(1)
}
