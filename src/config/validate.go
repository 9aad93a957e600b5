package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/sofmeright/detekt-op/src/detekt"
)

// Version ranges detekt 1.23 understands. Values outside only warn: newer
// detekt releases widen them.
const (
	languageVersionRange = ">= 1.0, < 2.2"
	jvmTargetRange       = ">= 1.8, < 23"
)

var validColors = map[string]bool{"": true, "auto": true, "always": true, "never": true}

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Version ───────────────────────────────────────────────────────────

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("version: must be 1, got %d", cfg.Version))
	}

	// ── Detekt ────────────────────────────────────────────────────────────

	d := cfg.Detekt

	if d.MaxIssues < 0 {
		errs = append(errs, fmt.Sprintf("detekt.max_issues: must be >= 0, got %d", d.MaxIssues))
	}

	for i, r := range d.Reports {
		rpath := fmt.Sprintf("detekt.reports[%d]", i)
		if _, kerr := detekt.ParseReportKind(r.Kind); kerr != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", rpath, kerr))
		}
		if strings.TrimSpace(r.Path) == "" {
			errs = append(errs, fmt.Sprintf("%s: path is required", rpath))
		}
	}

	if w := checkVersion("detekt.language_version", d.LanguageVersion, languageVersionRange); w != "" {
		warnings = append(warnings, w)
	}
	if w := checkVersion("detekt.jvm_target", d.JvmTarget, jvmTargetRange); w != "" {
		warnings = append(warnings, w)
	}

	if d.GenerateConfig && len(d.Config) > 1 {
		warnings = append(warnings, "detekt.generate_config: only the first config path is used as output")
	}
	if d.CreateBaseline && d.Baseline == "" {
		warnings = append(warnings, "detekt.create_baseline: no baseline path set, a project detekt-baseline.xml is required")
	}

	// ── Output ────────────────────────────────────────────────────────────

	if !validColors[cfg.Output.Color] {
		errs = append(errs, fmt.Sprintf("output.color: unknown value %q (supported: auto, always, never)", cfg.Output.Color))
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// checkVersion returns a warning when v is set but is not a version or
// falls outside rng.
func checkVersion(field, v, rng string) string {
	if v == "" {
		return ""
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Sprintf("%s: %q is not a version", field, v)
	}
	c, err := semver.NewConstraint(rng)
	if err != nil {
		return ""
	}
	if !c.Check(ver) {
		return fmt.Sprintf("%s: %s is outside the supported range %s", field, v, rng)
	}
	return ""
}
