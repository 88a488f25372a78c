package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"textgate/internal/domain/entity"
	"textgate/internal/domain/repository"
	"textgate/internal/domain/service"
	"textgate/pkg/provider"
)

// Error definitions for dispatch usecase
var (
	ErrEmptyText             = errors.New("text must not be empty")
	ErrInvalidProvider       = errors.New("invalid API choice")
	ErrProviderNotConfigured = errors.New("no API key configured for this provider")
	ErrProviderCall          = errors.New("provider call failed")
)

// DispatchUsecase defines the interface for routing text to a provider
type DispatchUsecase interface {
	// Submit forwards text to the chosen provider with the user's stored
	// key, normalizes the response and records usage exactly once per
	// successful normalized result.
	Submit(ctx context.Context, user *entity.User, id provider.ID, text string) (*provider.Result, error)
}

type dispatchUsecase struct {
	userRepo  repository.UserRepository
	usageRepo repository.UsageRepository
	caller    service.ProviderCaller
}

// NewDispatchUsecase creates a new dispatch usecase
func NewDispatchUsecase(userRepo repository.UserRepository, usageRepo repository.UsageRepository, caller service.ProviderCaller) DispatchUsecase {
	return &dispatchUsecase{
		userRepo:  userRepo,
		usageRepo: usageRepo,
		caller:    caller,
	}
}

func (u *dispatchUsecase) Submit(ctx context.Context, user *entity.User, id provider.ID, text string) (*provider.Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if !provider.Valid(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProvider, id)
	}

	apiKey := user.KeyFor(id)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotConfigured, id)
	}

	// Single attempt. Retries are the caller's policy, not ours.
	raw, err := u.caller.Call(ctx, id, apiKey, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderCall, err)
	}

	result, err := provider.Normalize(id, raw)
	if err != nil {
		// Malformed response: surfaced as-is, usage not incremented.
		return nil, err
	}

	if err := u.recordUsage(ctx, user, id); err != nil {
		return nil, err
	}

	return result, nil
}

func (u *dispatchUsecase) recordUsage(ctx context.Context, user *entity.User, id provider.ID) error {
	now := time.Now().UTC()

	record, err := u.usageRepo.GetByUserAndAPI(ctx, user.ID, string(id))
	if err != nil {
		return err
	}
	if record == nil {
		if err := u.usageRepo.Create(ctx, entity.NewUsageRecord(user.ID, string(id), now)); err != nil {
			return err
		}
	} else {
		record.Touch(now)
		if err := u.usageRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	user.APICalls++
	return u.userRepo.Update(ctx, user)
}
