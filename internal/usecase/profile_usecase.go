package usecase

import (
	"context"

	"textgate/internal/domain/entity"
	"textgate/internal/domain/repository"
	"textgate/pkg/provider"
)

// ProfileOutput is the profile view. API keys are never echoed back;
// only their presence is reported.
type ProfileOutput struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	APICalls             int64  `json:"api_calls"`
	HasHuggingFaceAPIKey bool   `json:"has_huggingface_api_key"`
	HasGoogleNLPAPIKey   bool   `json:"has_google_nlp_api_key"`
	HasOpenAIAPIKey      bool   `json:"has_openai_api_key"`
}

// UpdateKeysInput carries new provider API keys. Absent or empty fields
// leave the stored credential unchanged.
type UpdateKeysInput struct {
	HuggingFaceAPIKey string `json:"huggingface_api_key"`
	GoogleNLPAPIKey   string `json:"google_nlp_api_key"`
	OpenAIAPIKey      string `json:"openai_api_key"`
}

// ProfileUsecase defines the interface for profile business logic
type ProfileUsecase interface {
	Get(ctx context.Context, user *entity.User) *ProfileOutput
	UpdateKeys(ctx context.Context, user *entity.User, input *UpdateKeysInput) error
}

type profileUsecase struct {
	userRepo repository.UserRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repository.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) Get(_ context.Context, user *entity.User) *ProfileOutput {
	return &ProfileOutput{
		Username:             user.Username,
		Email:                user.Email,
		APICalls:             user.APICalls,
		HasHuggingFaceAPIKey: user.HasKey(provider.HuggingFace),
		HasGoogleNLPAPIKey:   user.HasKey(provider.GoogleNLP),
		HasOpenAIAPIKey:      user.HasKey(provider.OpenAI),
	}
}

func (u *profileUsecase) UpdateKeys(ctx context.Context, user *entity.User, input *UpdateKeysInput) error {
	user.SetKey(provider.HuggingFace, input.HuggingFaceAPIKey)
	user.SetKey(provider.GoogleNLP, input.GoogleNLPAPIKey)
	user.SetKey(provider.OpenAI, input.OpenAIAPIKey)
	return u.userRepo.Update(ctx, user)
}
