package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"textgate/internal/domain/entity"
	"textgate/pkg/provider"
)

func newTestUser() *entity.User {
	user := entity.NewUser("alice", "alice@example.com", "hash")
	user.SetKey(provider.HuggingFace, "hf-key")
	user.SetKey(provider.GoogleNLP, "g-key")
	return user
}

func TestDispatchUsecase_Submit(t *testing.T) {
	t.Run("huggingface success records usage", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usageRepo := new(MockUsageRepository)
		caller := new(MockProviderCaller)
		uc := NewDispatchUsecase(userRepo, usageRepo, caller)

		user := newTestUser()
		caller.On("Call", mock.Anything, provider.HuggingFace, "hf-key", "I love this").
			Return(json.RawMessage(`{"label":"POSITIVE","score":0.98}`), nil)
		usageRepo.On("GetByUserAndAPI", mock.Anything, user.ID, "huggingface").Return(nil, nil)
		usageRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.UsageRecord) bool {
			return r.APIName == "huggingface" && r.UsageCount == 1
		})).Return(nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		result, err := uc.Submit(context.Background(), user, provider.HuggingFace, "I love this")

		require.NoError(t, err)
		assert.Equal(t, provider.HuggingFace, result.API)
		assert.Equal(t, "POSITIVE", result.HuggingFace.Label)
		assert.Equal(t, 0.98, result.HuggingFace.Score)
		assert.Equal(t, int64(1), user.APICalls)
		usageRepo.AssertExpectations(t)
	})

	t.Run("google_nlp success with entities", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usageRepo := new(MockUsageRepository)
		caller := new(MockProviderCaller)
		uc := NewDispatchUsecase(userRepo, usageRepo, caller)

		user := newTestUser()
		raw := json.RawMessage(`{"sentiment":{"score":0.8,"magnitude":1.2},"entities":[{"name":"Apple","type":"ORGANIZATION","salience":0.9}]}`)
		caller.On("Call", mock.Anything, provider.GoogleNLP, "g-key", "Apple is great").Return(raw, nil)
		usageRepo.On("GetByUserAndAPI", mock.Anything, user.ID, "google_nlp").Return(nil, nil)
		usageRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.UsageRecord")).Return(nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		result, err := uc.Submit(context.Background(), user, provider.GoogleNLP, "Apple is great")

		require.NoError(t, err)
		assert.Equal(t, provider.GoogleNLP, result.API)
		assert.Equal(t, 0.8, result.GoogleNLP.Sentiment.Score)
		assert.Equal(t, 1.2, result.GoogleNLP.Sentiment.Magnitude)
		require.Len(t, result.GoogleNLP.Entities, 1)
		assert.Equal(t, "Apple", result.GoogleNLP.Entities[0].Name)
	})

	t.Run("existing usage record is touched", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usageRepo := new(MockUsageRepository)
		caller := new(MockProviderCaller)
		uc := NewDispatchUsecase(userRepo, usageRepo, caller)

		user := newTestUser()
		record := entity.NewUsageRecord(user.ID, "huggingface", user.CreatedAt)
		caller.On("Call", mock.Anything, provider.HuggingFace, "hf-key", "again").
			Return(json.RawMessage(`{"label":"NEGATIVE","score":0.6}`), nil)
		usageRepo.On("GetByUserAndAPI", mock.Anything, user.ID, "huggingface").Return(record, nil)
		usageRepo.On("Update", mock.Anything, record).Return(nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		_, err := uc.Submit(context.Background(), user, provider.HuggingFace, "again")

		require.NoError(t, err)
		assert.Equal(t, int64(2), record.UsageCount)
	})

	t.Run("empty text fails before any call", func(t *testing.T) {
		caller := new(MockProviderCaller)
		uc := NewDispatchUsecase(new(MockUserRepository), new(MockUsageRepository), caller)

		for _, text := range []string{"", "   ", "\n\t"} {
			_, err := uc.Submit(context.Background(), newTestUser(), provider.HuggingFace, text)
			assert.ErrorIs(t, err, ErrEmptyText)
		}
		caller.AssertNotCalled(t, "Call", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown provider", func(t *testing.T) {
		uc := NewDispatchUsecase(new(MockUserRepository), new(MockUsageRepository), new(MockProviderCaller))

		_, err := uc.Submit(context.Background(), newTestUser(), "watson", "text")

		assert.ErrorIs(t, err, ErrInvalidProvider)
	})

	t.Run("missing API key", func(t *testing.T) {
		uc := NewDispatchUsecase(new(MockUserRepository), new(MockUsageRepository), new(MockProviderCaller))

		_, err := uc.Submit(context.Background(), newTestUser(), provider.OpenAI, "text")

		assert.ErrorIs(t, err, ErrProviderNotConfigured)
	})

	t.Run("upstream failure carries the message", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		caller := new(MockProviderCaller)
		uc := NewDispatchUsecase(new(MockUserRepository), usageRepo, caller)

		caller.On("Call", mock.Anything, provider.HuggingFace, "hf-key", "text").
			Return(nil, errors.New("upstream returned status 503"))

		_, err := uc.Submit(context.Background(), newTestUser(), provider.HuggingFace, "text")

		assert.ErrorIs(t, err, ErrProviderCall)
		assert.Contains(t, err.Error(), "503")
		usageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed response does not increment usage", func(t *testing.T) {
		usageRepo := new(MockUsageRepository)
		caller := new(MockProviderCaller)
		uc := NewDispatchUsecase(new(MockUserRepository), usageRepo, caller)

		user := newTestUser()
		caller.On("Call", mock.Anything, provider.HuggingFace, "hf-key", "text").
			Return(json.RawMessage(`{"label":"POSITIVE","score":1.5}`), nil)

		_, err := uc.Submit(context.Background(), user, provider.HuggingFace, "text")

		assert.ErrorIs(t, err, provider.ErrMalformedResponse)
		assert.Equal(t, int64(0), user.APICalls)
		usageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		usageRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
