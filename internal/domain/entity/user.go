package entity

import (
	"time"

	"github.com/google/uuid"

	"textgate/pkg/provider"
)

// User represents a registered account. Provider API keys are stored per
// user and substituted server-side on provider calls; they are never
// echoed back once set.
type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Username        string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	Email           string    `json:"email" gorm:"type:varchar(255);not null"`
	PasswordHash    string    `json:"-" gorm:"type:varchar(100);not null"`
	HuggingFaceKey  string    `json:"-" gorm:"type:text"`
	GoogleNLPKey    string    `json:"-" gorm:"type:text"`
	OpenAIKey       string    `json:"-" gorm:"type:text"`
	APICalls        int64     `json:"api_calls" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new User with the given credentials.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// KeyFor returns the stored API key for the given provider, empty when unset.
func (u *User) KeyFor(id provider.ID) string {
	switch id {
	case provider.HuggingFace:
		return u.HuggingFaceKey
	case provider.GoogleNLP:
		return u.GoogleNLPKey
	case provider.OpenAI:
		return u.OpenAIKey
	default:
		return ""
	}
}

// SetKey stores an API key for the given provider. Empty values are
// ignored so an update never clears a stored credential.
func (u *User) SetKey(id provider.ID, key string) {
	if key == "" {
		return
	}
	switch id {
	case provider.HuggingFace:
		u.HuggingFaceKey = key
	case provider.GoogleNLP:
		u.GoogleNLPKey = key
	case provider.OpenAI:
		u.OpenAIKey = key
	}
}

// HasKey reports whether an API key is stored for the given provider.
func (u *User) HasKey(id provider.ID) bool {
	return u.KeyFor(id) != ""
}
