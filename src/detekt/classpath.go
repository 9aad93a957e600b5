package detekt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MainClass is detekt's command line entry point.
const MainClass = "io.gitlab.arturbosch.detekt.cli.Main"

// jarPrefixes lists the artifacts detekt-cli needs at run time. Jars are
// discovered by prefix because their version suffixes vary.
var jarPrefixes = []string{
	"contester-breakpoint-",
	"detekt-",
	"jcommander-",
	"kotlin-compiler-embeddable-",
	"kotlin-daemon-embeddable-",
	"kotlin-reflect-",
	"kotlin-script-runtime-",
	"kotlin-stdlib-",
	"kotlin-stdlib-common-",
	"kotlin-stdlib-jdk7-",
	"kotlin-stdlib-jdk8-",
	"kotlinx-coroutines-core-jvm-",
	"kotlinx-html-jvm-",
	"kotlinx-serialization-core-jvm-",
	"kotlinx-serialization-json-jvm-",
	"sarif4k-jvm-",
	"snakeyaml-engine-",
	"trove4j-",
}

// JarPrefixes returns a copy of the artifact name prefixes used by Jars.
func JarPrefixes() []string {
	return append([]string(nil), jarPrefixes...)
}

// Jars returns the absolute paths of the detekt runtime jars found in dir,
// in directory order. Source and javadoc jars are skipped. A missing
// directory yields no jars and no error.
func Jars(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning library directory: %w", err)
	}

	var jars []string
	for _, e := range entries {
		if e.IsDir() || !isRuntimeJar(e.Name()) {
			continue
		}
		jars = append(jars, absPath(filepath.Join(dir, e.Name())))
	}
	return jars, nil
}

func isRuntimeJar(name string) bool {
	if !strings.HasSuffix(name, ".jar") {
		return false
	}
	if strings.HasSuffix(name, "-sources.jar") || strings.HasSuffix(name, "-javadoc.jar") {
		return false
	}
	for _, p := range jarPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// DetektVersion reports the highest detekt-cli version present in dir,
// or "" when none is found.
func DetektVersion(dir string) (string, error) {
	jars, err := Jars(dir)
	if err != nil {
		return "", err
	}

	var best *semver.Version
	for _, j := range jars {
		name := filepath.Base(j)
		if !strings.HasPrefix(name, "detekt-cli-") {
			continue
		}
		raw := strings.TrimSuffix(strings.TrimPrefix(name, "detekt-cli-"), ".jar")
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue // e.g. detekt-cli-all.jar
		}
		if best == nil || v.GreaterThan(best) {
			best = v
		}
	}
	if best == nil {
		return "", nil
	}
	return best.Original(), nil
}

// JavaTool locates the java launcher: $JAVA_HOME/bin/java when it exists,
// otherwise plain "java" resolved through PATH by the runner.
func JavaTool() string {
	exe := "java"
	if runtime.GOOS == "windows" {
		exe = "java.exe"
	}
	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidate := filepath.Join(home, "bin", exe)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate
		}
	}
	return "java"
}
