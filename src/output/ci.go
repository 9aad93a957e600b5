package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// CI environment detection.

func IsCI() bool {
	return os.Getenv("CI") == "true"
}

func IsGitLabCI() bool {
	return os.Getenv("GITLAB_CI") == "true"
}

func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// Collapsible log groups. GitLab uses section markers, GitHub Actions uses
// ::group:: workflow commands; elsewhere nothing is written.

func SectionStart(w io.Writer, id, name string) {
	switch {
	case IsGitLabCI():
		fmt.Fprintf(w, "\033[0Ksection_start:%d:%s\r\033[0K%s\n", time.Now().Unix(), id, name)
	case IsGitHubActions():
		fmt.Fprintf(w, "::group::%s\n", name)
	}
}

// SectionStartCollapsed starts a section that is collapsed by default.
// GitHub groups are always collapsed.
func SectionStartCollapsed(w io.Writer, id, name string) {
	switch {
	case IsGitLabCI():
		fmt.Fprintf(w, "\033[0Ksection_start:%d:%s[collapsed=true]\r\033[0K%s\n", time.Now().Unix(), id, name)
	case IsGitHubActions():
		fmt.Fprintf(w, "::group::%s\n", name)
	}
}

func SectionEnd(w io.Writer, id string) {
	switch {
	case IsGitLabCI():
		fmt.Fprintf(w, "\033[0Ksection_end:%d:%s\r\033[0K\n", time.Now().Unix(), id)
	case IsGitHubActions():
		fmt.Fprintln(w, "::endgroup::")
	}
}

// ContextKV returns the CI context shown above a run: pipeline, commit and
// branch or tag, from GitLab or GitHub variables.
func ContextKV() []KV {
	var kv []KV

	if pipe := os.Getenv("CI_PIPELINE_ID"); pipe != "" {
		kv = append(kv, KV{Key: "Pipeline", Value: pipe})
	} else if run := os.Getenv("GITHUB_RUN_ID"); run != "" {
		kv = append(kv, KV{Key: "Run", Value: run})
	}

	sha := os.Getenv("CI_COMMIT_SHORT_SHA")
	if sha == "" {
		sha = os.Getenv("CI_COMMIT_SHA")
	}
	if sha == "" {
		sha = os.Getenv("GITHUB_SHA")
	}
	if len(sha) > 8 {
		sha = sha[:8]
	}
	if sha != "" {
		kv = append(kv, KV{Key: "Commit", Value: sha})
	}

	if branch := os.Getenv("CI_COMMIT_BRANCH"); branch != "" {
		kv = append(kv, KV{Key: "Branch", Value: branch})
	} else if tag := os.Getenv("CI_COMMIT_TAG"); tag != "" {
		kv = append(kv, KV{Key: "Tag", Value: tag})
	} else if ref := os.Getenv("GITHUB_REF_NAME"); ref != "" {
		kv = append(kv, KV{Key: "Ref", Value: ref})
	}
	return kv
}
