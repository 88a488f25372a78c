package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textgate/pkg/provider"
)

func TestNewUser(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, int64(0), user.APICalls)
}

func TestUser_Keys(t *testing.T) {
	t.Run("set and read keys per provider", func(t *testing.T) {
		user := NewUser("alice", "alice@example.com", "hashed")

		user.SetKey(provider.HuggingFace, "hf-key")
		user.SetKey(provider.GoogleNLP, "g-key")

		assert.Equal(t, "hf-key", user.KeyFor(provider.HuggingFace))
		assert.Equal(t, "g-key", user.KeyFor(provider.GoogleNLP))
		assert.True(t, user.HasKey(provider.HuggingFace))
		assert.True(t, user.HasKey(provider.GoogleNLP))
		assert.False(t, user.HasKey(provider.OpenAI))
	})

	t.Run("empty value leaves stored key unchanged", func(t *testing.T) {
		user := NewUser("alice", "alice@example.com", "hashed")
		user.SetKey(provider.HuggingFace, "hf-key")

		user.SetKey(provider.HuggingFace, "")

		assert.Equal(t, "hf-key", user.KeyFor(provider.HuggingFace))
	})

	t.Run("unknown provider has no key", func(t *testing.T) {
		user := NewUser("alice", "alice@example.com", "hashed")
		assert.Empty(t, user.KeyFor("watson"))
		assert.False(t, user.HasKey("watson"))
	})
}
