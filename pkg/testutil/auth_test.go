package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "abcd******", maskSecret("abcdefghijkl"))
	assert.Equal(t, "acco******", maskSecret("account-1a2b3c"))
}

func TestIntegrationTestConfigured(t *testing.T) {
	t.Setenv("UNITTEST_API_KEY", "key")
	t.Setenv("UNITTEST_API_SECRET", "secret")

	_, _, ok := IntegrationTestConfigured(t, "UNITTEST")
	assert.False(t, ok, "TEST_UNITTEST is not set")

	t.Setenv("TEST_UNITTEST", "1")
	key, secret, ok := IntegrationTestConfigured(t, "UNITTEST")
	assert.True(t, ok)
	assert.Equal(t, "key", key)
	assert.Equal(t, "secret", secret)
}

func TestIntegrationTestBaseURL(t *testing.T) {
	assert.Equal(t, "https://default", IntegrationTestBaseURL("UNITTEST", "https://default"))

	t.Setenv("UNITTEST_BASE_URL", "https://sandbox")
	assert.Equal(t, "https://sandbox", IntegrationTestBaseURL("UNITTEST", "https://default"))
}
