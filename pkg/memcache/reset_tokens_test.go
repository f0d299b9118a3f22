package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokenSingleUse(t *testing.T) {
	store := NewResetTokenStore(time.Minute)
	store.Put("tok", "user@example.com")

	email, ok := store.Consume("tok")
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email)

	_, ok = store.Consume("tok")
	assert.False(t, ok, "a token cannot be consumed twice")
}

func TestResetTokenExpiry(t *testing.T) {
	store := NewResetTokenStore(-time.Second)
	store.Put("tok", "user@example.com")

	_, ok := store.Consume("tok")
	assert.False(t, ok)
}

func TestUnknownToken(t *testing.T) {
	store := NewResetTokenStore(time.Minute)
	_, ok := store.Consume("nope")
	assert.False(t, ok)
}
