package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, []ProjectResult{
		{Dir: "/src/acme/app", Status: StatusSuccess, Detail: "no issues", Elapsed: 1500 * time.Millisecond},
		{Dir: "lib", Status: StatusFailed, Detail: "exit status 2"},
	}, 3*time.Second, false)

	out := buf.String()
	require.Contains(t, out, "── Summary ")
	require.Contains(t, out, "│ …/acme/app")
	require.Contains(t, out, "✓  no issues (1.5s)")
	require.Contains(t, out, "│ lib")
	require.Contains(t, out, "✗  exit status 2")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	total := lines[len(lines)-2]
	require.Contains(t, total, "total")
	require.Contains(t, total, "3.0s")
	require.True(t, strings.HasSuffix(total, "✗"), "any failure fails the total: %q", total)
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "    └"))
}

func TestSummaryAllSuccess(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, []ProjectResult{{Dir: "a", Status: StatusSuccess}}, time.Second, false)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.True(t, strings.HasSuffix(lines[len(lines)-2], "✓"))
}

func TestStatusIcon(t *testing.T) {
	require.Equal(t, "✓", StatusIcon("success", false))
	require.Equal(t, "✗", StatusIcon("failed", false))
	require.Equal(t, "⊘", StatusIcon("skipped", false))
	require.Equal(t, "\033[32m✓\033[0m", StatusIcon("success", true))
}

func TestSectionFieldAndLines(t *testing.T) {
	var buf bytes.Buffer
	sec := NewSection(&buf, "Detekt", 250*time.Millisecond, false)
	sec.Field("baseline", "/p/detekt-baseline.xml")
	sec.Field("skipped", "")
	sec.Lines("one\ntwo\n")
	sec.Close()

	out := buf.String()
	require.Contains(t, out, "── Detekt ")
	require.Contains(t, out, " 250ms ──")
	require.Contains(t, out, "│ baseline        → /p/detekt-baseline.xml\n")
	require.NotContains(t, out, "skipped")
	require.Contains(t, out, "│ one\n    │ two\n")
}

func TestFormatElapsed(t *testing.T) {
	require.Equal(t, "<1ms", formatElapsed(0))
	require.Equal(t, "42ms", formatElapsed(42*time.Millisecond))
	require.Equal(t, "2.5s", formatElapsed(2500*time.Millisecond))
	require.Equal(t, "1m5.0s", formatElapsed(65*time.Second))
}

func TestUseColor(t *testing.T) {
	require.True(t, UseColor("always"))
	require.False(t, UseColor("never"))

	t.Setenv("NO_COLOR", "1")
	t.Setenv("CI", "true")
	require.False(t, UseColor("auto"))
}

func TestSectionStartGitHub(t *testing.T) {
	t.Setenv("GITLAB_CI", "")
	t.Setenv("GITHUB_ACTIONS", "true")

	var buf bytes.Buffer
	SectionStart(&buf, "detekt_app", "detekt app")
	SectionEnd(&buf, "detekt_app")
	require.Equal(t, "::group::detekt app\n::endgroup::\n", buf.String())
}

func TestSectionStartOutsideCI(t *testing.T) {
	t.Setenv("GITLAB_CI", "")
	t.Setenv("GITHUB_ACTIONS", "")

	var buf bytes.Buffer
	SectionStartCollapsed(&buf, "x", "x")
	SectionEnd(&buf, "x")
	require.Empty(t, buf.String())
}

func TestContextKV(t *testing.T) {
	t.Setenv("CI_PIPELINE_ID", "")
	t.Setenv("CI_COMMIT_SHORT_SHA", "")
	t.Setenv("CI_COMMIT_SHA", "")
	t.Setenv("CI_COMMIT_BRANCH", "")
	t.Setenv("CI_COMMIT_TAG", "")
	t.Setenv("GITHUB_RUN_ID", "77")
	t.Setenv("GITHUB_SHA", "0123456789abcdef")
	t.Setenv("GITHUB_REF_NAME", "main")

	require.Equal(t, []KV{
		{Key: "Run", Value: "77"},
		{Key: "Commit", Value: "01234567"},
		{Key: "Ref", Value: "main"},
	}, ContextKV())
}
