package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringUsesLdflags(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = oldV, oldC, oldD })

	Version, Commit, BuildDate = "v1.4.0", "abc1234", "2026-10-01"
	require.Equal(t, "detekt-op v1.4.0 (abc1234, 2026-10-01)", String())
}

func TestStringDefaults(t *testing.T) {
	require.True(t, strings.HasPrefix(String(), "detekt-op "))
	require.Contains(t, Runtime(), "go")
}
