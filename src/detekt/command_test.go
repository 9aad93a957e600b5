package detekt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sep = string(os.PathListSeparator)

func TestCommandListRequiresProject(t *testing.T) {
	args, err := newTestOperation().Input("src").CommandList()
	require.ErrorIs(t, err, ErrNoProject)
	require.Nil(t, args)
}

func TestCommandListPrefix(t *testing.T) {
	p := newFakeProject(t)
	cli := touch(t, filepath.Join(p.lib, "detekt-cli-1.23.7.jar"))
	touch(t, filepath.Join(p.lib, "detekt-cli-1.23.7-sources.jar"))
	touch(t, filepath.Join(p.lib, "detekt-cli-1.23.7-javadoc.jar"))
	stdlib := touch(t, filepath.Join(p.lib, "kotlin-stdlib-2.0.21.jar"))
	touch(t, filepath.Join(p.lib, "junit-jupiter-5.11.0.jar"))
	touch(t, filepath.Join(p.lib, "notes.txt"))

	args, err := newTestOperation(WithJava("/opt/jdk/bin/java")).FromProject(p).CommandList()
	require.NoError(t, err)

	want := []string{
		"/opt/jdk/bin/java",
		"-cp", cli + sep + stdlib,
		MainClass,
		"--excludes", ExcludeBuild + "," + ExcludeResources,
	}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Fatalf("argv mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsAllOptionsInOrder(t *testing.T) {
	chdir(t, t.TempDir())
	html, err := NewReport(ReportHTML, "reports/detekt.html")
	require.NoError(t, err)

	op := newTestOperation().
		AllRules(true).
		AutoCorrect(true).
		BasePath("basePath").
		Baseline("baseline").
		BuildUponDefaultConfig(true).
		ClassPath("path1", "path2").
		Config("config1", "config2").
		ConfigResource("configResource").
		CreateBaseline(true).
		Debug(true).
		DisableDefaultRuleSets(true).
		Excludes("excludes1", "excludes2").
		GenerateConfig(true).
		Includes("includes1", "includes2").
		Input("input1", "input2").
		JdkHome("jdkHome").
		JvmTarget("jvmTarget").
		LanguageVersion("languageVersion").
		MaxIssues(10).
		Parallel(true).
		Plugins("jar1", "jar2").
		Report(html)

	want := []string{
		"--all-rules",
		"--auto-correct",
		"--base-path", abs(t, "basePath"),
		"--baseline", abs(t, "baseline"),
		"--build-upon-default-config",
		"--classpath", abs(t, "path1") + sep + abs(t, "path2"),
		"-config", abs(t, "config1") + ";" + abs(t, "config2"),
		"--config-resource", abs(t, "configResource"),
		"--create-baseline",
		"--debug",
		"--disable-default-rulesets",
		"--excludes", "excludes1,excludes2",
		"--generate-config",
		"--includes", "includes1,includes2",
		"--input", abs(t, "input1") + "," + abs(t, "input2"),
		"--jdk-home", "jdkHome",
		"--jvm-target", "jvmTarget",
		"--language-version", "languageVersion",
		"--max-issues", "10",
		"--parallel",
		"--plugins", abs(t, "jar1") + "," + abs(t, "jar2"),
		"--report", "html:reports/detekt.html",
	}
	if diff := cmp.Diff(want, op.Args()); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsMaxIssues(t *testing.T) {
	for _, tc := range []struct {
		max  int
		want []string
	}{
		{max: 0, want: nil},
		{max: -3, want: nil},
		{max: 10, want: []string{"--max-issues", "10"}},
	} {
		got := newTestOperation().MaxIssues(tc.max).Args()
		require.Equal(t, tc.want, got, "max %d", tc.max)
	}
}

func TestArgsReportsKeepOrder(t *testing.T) {
	op := newTestOperation().
		Report(mustReport(t, ReportXML, "/r/d.xml")).
		Report(mustReport(t, ReportHTML, "/r/d.html"))

	got := strings.Join(op.Args(), " ")
	require.Equal(t, "--report xml:/r/d.xml --report html:/r/d.html", got)
}

func TestArgsNeverEmitsInvalidReports(t *testing.T) {
	var logs bytes.Buffer
	op := newTestOperation(WithLogger(bufferLogger(&logs))).
		Report(Report{}, mustReport(t, ReportTXT, "out.txt"))
	require.Equal(t, 1, op.ReportList().Len())
	require.Contains(t, logs.String(), "ignoring invalid report")

	// The live list bypasses Report, so Args filters as well.
	op.ReportList().Append(Report{})
	require.Equal(t, []string{"--report", "txt:out.txt"}, op.Args())
}

func TestArgsClassPathSeparator(t *testing.T) {
	chdir(t, t.TempDir())
	got := newTestOperation().ClassPath("a.jar", "b.jar").Args()
	require.Equal(t, []string{"--classpath", abs(t, "a.jar") + sep + abs(t, "b.jar")}, got)
}

func TestArgsSkipEmptyValues(t *testing.T) {
	op := newTestOperation().JvmTarget("").LanguageVersion("").Input()
	require.Empty(t, op.Args())
}

func TestCommandListIsIdempotent(t *testing.T) {
	p := newFakeProject(t)
	touch(t, filepath.Join(p.lib, "detekt-core-1.23.7.jar"))

	op := newTestOperation().
		FromProject(p).
		Input(filepath.Join(p.work, "src")).
		Report(mustReport(t, ReportSARIF, "out.sarif"))

	first, err := op.CommandList()
	require.NoError(t, err)
	second, err := op.CommandList()
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 2, op.ExcludesList().Len())
	require.Equal(t, 1, op.InputList().Len())
	require.Equal(t, 1, op.ReportList().Len())
}

func TestCommandListUnreadableLibDirectory(t *testing.T) {
	p := newFakeProject(t)
	file := touch(t, filepath.Join(p.work, "not-a-dir"))
	p.lib = file

	_, err := newTestOperation().FromProject(p).CommandList()
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoProject))
}
