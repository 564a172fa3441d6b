package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	platformconfig "github.com/qolzam/mailrelay/internal/platform/config"
)

// NewTestConfig returns a relay configuration suitable for unit tests: the
// log provider, the stock sender address, and default rate limits.
func NewTestConfig(t *testing.T) *platformconfig.Config {
	t.Helper()

	cfg, err := platformconfig.LoadFromMap(map[string]string{
		"APP_NAME":           "mailrelay-test",
		"ORG_NAME":           "Telar",
		"EMAIL_PROVIDER":     platformconfig.ProviderLog,
		"DEFAULT_FROM_EMAIL": "noreply@telar.dev",
	})
	require.NoError(t, err)

	return cfg
}
