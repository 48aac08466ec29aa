package testutil

import (
	"os"
	"regexp"
	"testing"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})[\w-]+\b`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether the live api tests of the given
// exchange prefix are enabled. It requires PREFIX_API_KEY, PREFIX_API_SECRET
// and TEST_PREFIX=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}

// IntegrationTestBaseURL returns PREFIX_BASE_URL when set, so live tests can
// be pointed at a sandbox environment.
func IntegrationTestBaseURL(prefix, defaultURL string) string {
	if u, ok := os.LookupEnv(prefix + "_BASE_URL"); ok && u != "" {
		return u
	}

	return defaultURL
}
