package config

import (
	"fmt"
	"path/filepath"

	"github.com/sofmeright/detekt-op/src/detekt"
)

// DetektConfig mirrors every option of a detekt run.
type DetektConfig struct {
	AllRules               bool           `yaml:"all_rules" toml:"all_rules"`
	AutoCorrect            bool           `yaml:"auto_correct" toml:"auto_correct"`
	BasePath               string         `yaml:"base_path" toml:"base_path"`
	Baseline               string         `yaml:"baseline" toml:"baseline"`
	BuildUponDefaultConfig bool           `yaml:"build_upon_default_config" toml:"build_upon_default_config"`
	ClassPath              []string       `yaml:"classpath" toml:"classpath"`
	Config                 []string       `yaml:"config" toml:"config"`
	ConfigResource         string         `yaml:"config_resource" toml:"config_resource"`
	CreateBaseline         bool           `yaml:"create_baseline" toml:"create_baseline"`
	Debug                  bool           `yaml:"debug" toml:"debug"`
	DisableDefaultRuleSets bool           `yaml:"disable_default_rulesets" toml:"disable_default_rulesets"`
	Excludes               []string       `yaml:"excludes" toml:"excludes"`
	GenerateConfig         bool           `yaml:"generate_config" toml:"generate_config"`
	Includes               []string       `yaml:"includes" toml:"includes"`
	Input                  []string       `yaml:"input" toml:"input"`
	JdkHome                string         `yaml:"jdk_home" toml:"jdk_home"`
	JvmTarget              string         `yaml:"jvm_target" toml:"jvm_target"`
	LanguageVersion        string         `yaml:"language_version" toml:"language_version"`
	MaxIssues              int            `yaml:"max_issues" toml:"max_issues"`
	Parallel               bool           `yaml:"parallel" toml:"parallel"`
	Plugins                []string       `yaml:"plugins" toml:"plugins"`
	Reports                []ReportConfig `yaml:"reports" toml:"reports"`
}

// ReportConfig is one report entry, e.g. {kind: html, path: build/reports/detekt.html}.
type ReportConfig struct {
	Kind string `yaml:"kind" toml:"kind"`
	Path string `yaml:"path" toml:"path"`
}

// DefaultDetektConfig returns an empty option set; detekt applies its own defaults.
func DefaultDetektConfig() DetektConfig {
	return DetektConfig{}
}

// Apply copies the configured options onto op. Scalars overwrite, lists
// append. Apply before FromProject so an explicit baseline takes priority
// over a detected one.
func (c DetektConfig) Apply(op *detekt.Operation) error {
	reports := make([]detekt.Report, 0, len(c.Reports))
	for i, rc := range c.Reports {
		kind, err := detekt.ParseReportKind(rc.Kind)
		if err != nil {
			return fmt.Errorf("detekt.reports[%d]: %w", i, err)
		}
		r, err := detekt.NewReport(kind, rc.Path)
		if err != nil {
			return fmt.Errorf("detekt.reports[%d]: %w", i, err)
		}
		reports = append(reports, r)
	}

	op.AllRules(c.AllRules).
		AutoCorrect(c.AutoCorrect).
		BuildUponDefaultConfig(c.BuildUponDefaultConfig).
		CreateBaseline(c.CreateBaseline).
		Debug(c.Debug).
		DisableDefaultRuleSets(c.DisableDefaultRuleSets).
		GenerateConfig(c.GenerateConfig).
		Parallel(c.Parallel).
		MaxIssues(c.MaxIssues).
		JdkHome(c.JdkHome).
		JvmTarget(c.JvmTarget).
		LanguageVersion(c.LanguageVersion).
		ClassPath(c.ClassPath...).
		Config(c.Config...).
		Excludes(c.Excludes...).
		Includes(c.Includes...).
		Input(c.Input...).
		Plugins(c.Plugins...).
		Report(reports...)

	if c.BasePath != "" {
		op.BasePath(c.BasePath)
	}
	if c.Baseline != "" {
		op.Baseline(c.Baseline)
	}
	if c.ConfigResource != "" {
		op.ConfigResource(c.ConfigResource)
	}
	return nil
}

// Resolve returns a copy with relative file-like options joined onto dir.
// Glob patterns, report paths and version strings are left alone.
func (c DetektConfig) Resolve(dir string) DetektConfig {
	if dir == "" {
		return c
	}
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	joinAll := func(in []string) []string {
		if len(in) == 0 {
			return in
		}
		out := make([]string, len(in))
		for i, p := range in {
			out[i] = join(p)
		}
		return out
	}

	c.BasePath = join(c.BasePath)
	c.Baseline = join(c.Baseline)
	c.ConfigResource = join(c.ConfigResource)
	c.ClassPath = joinAll(c.ClassPath)
	c.Config = joinAll(c.Config)
	c.Input = joinAll(c.Input)
	c.Plugins = joinAll(c.Plugins)
	return c
}
