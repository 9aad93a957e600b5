// Package detekt drives the detekt static analyzer for Kotlin.
//
// An Operation accumulates options through chained calls, turns them into
// a detekt command line with CommandList and runs it with Execute. Every
// file-like option accepts a plain string, an *os.File or a Path and stores
// the absolute path.
package detekt

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/sofmeright/detekt-op/src/process"
)

// BaselineFile is the baseline name picked up from a project's work directory.
const BaselineFile = "detekt-baseline.xml"

// Excludes appended by FromProject.
const (
	ExcludeBuild     = ".*/build/.*"
	ExcludeResources = ".*/resources/.*"
)

// Project supplies the directories an Operation needs.
type Project interface {
	WorkDirectory() string
	LibDirectory() string
}

// Settings is a snapshot of the scalar options of an Operation.
type Settings struct {
	AllRules               bool
	AutoCorrect            bool
	BasePath               string
	Baseline               string
	BuildUponDefaultConfig bool
	ConfigResource         string
	CreateBaseline         bool
	Debug                  bool
	DisableDefaultRuleSets bool
	GenerateConfig         bool
	JdkHome                string
	JvmTarget              string
	LanguageVersion        string
	MaxIssues              int
	Parallel               bool
}

// Operation configures and runs a single detekt invocation. It is owned by
// one caller and is not safe for concurrent use.
type Operation struct {
	settings Settings

	classPath List[string]
	config    List[string]
	excludes  List[string]
	includes  List[string]
	input     List[string]
	plugins   List[string]
	reports   List[Report]

	project Project

	java   string
	runner process.Runner
	logger hclog.Logger
	silent bool
	stdout io.Writer
	stderr io.Writer
}

// Option customizes how an Operation runs.
type Option func(*Operation)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l hclog.Logger) Option {
	return func(op *Operation) {
		if l != nil {
			op.logger = l
		}
	}
}

// WithRunner replaces the process runner.
func WithRunner(r process.Runner) Option {
	return func(op *Operation) {
		if r != nil {
			op.runner = r
		}
	}
}

// WithJava overrides the java launcher.
func WithJava(path string) Option {
	return func(op *Operation) {
		if path != "" {
			op.java = path
		}
	}
}

// WithSilent suppresses the informational messages of Execute.
func WithSilent(silent bool) Option {
	return func(op *Operation) { op.silent = silent }
}

// WithOutput streams the child's stdout and stderr to the given writers.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(op *Operation) {
		op.stdout = stdout
		op.stderr = stderr
	}
}

// New returns an Operation with no project bound.
func New(opts ...Option) *Operation {
	op := &Operation{
		logger: hclog.NewNullLogger(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, o := range opts {
		o(op)
	}
	if op.runner == nil {
		op.runner = process.NewExecRunner(op.logger.Named("process"))
	}
	if op.java == "" {
		op.java = JavaTool()
	}
	return op
}

// FromProject binds the operation to p. A detekt-baseline.xml in the work
// directory becomes the baseline unless one was already set, and the
// build and resources excludes are appended on every call.
func (op *Operation) FromProject(p Project) *Operation {
	op.project = p
	if p == nil {
		return op
	}
	if op.settings.Baseline == "" {
		candidate := Path{elems: []string{p.WorkDirectory(), BaselineFile}}.String()
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			op.settings.Baseline = absPath(candidate)
		}
	}
	op.excludes.Append(ExcludeBuild, ExcludeResources)
	return op
}

// Project returns the bound project, or nil.
func (op *Operation) Project() Project { return op.project }

// Settings returns a copy of the scalar options.
func (op *Operation) Settings() Settings { return op.settings }

// AllRules activates all available (even unstable) rules.
func (op *Operation) AllRules(v bool) *Operation {
	op.settings.AllRules = v
	return op
}

// AutoCorrect lets rules that support it rewrite code.
func (op *Operation) AutoCorrect(v bool) *Operation {
	op.settings.AutoCorrect = v
	return op
}

// BasePath sets the directory report paths are made relative to.
func (op *Operation) BasePath(path string) *Operation {
	op.settings.BasePath = absPath(path)
	return op
}

// BasePathFile is BasePath for an *os.File.
func (op *Operation) BasePathFile(f *os.File) *Operation {
	if f == nil {
		return op
	}
	return op.BasePath(f.Name())
}

// BasePathOf is BasePath for a Path.
func (op *Operation) BasePathOf(p Path) *Operation { return op.BasePath(p.String()) }

// Baseline sets the baseline xml file. Only findings not in the baseline
// are reported.
func (op *Operation) Baseline(path string) *Operation {
	op.settings.Baseline = absPath(path)
	return op
}

// BaselineFile is Baseline for an *os.File.
func (op *Operation) BaselineFile(f *os.File) *Operation {
	if f == nil {
		return op
	}
	return op.Baseline(f.Name())
}

// BaselineOf is Baseline for a Path.
func (op *Operation) BaselineOf(p Path) *Operation { return op.Baseline(p.String()) }

// BuildUponDefaultConfig layers provided configs on top of detekt's defaults.
func (op *Operation) BuildUponDefaultConfig(v bool) *Operation {
	op.settings.BuildUponDefaultConfig = v
	return op
}

// ClassPath appends class directories and jars used for type resolution.
func (op *Operation) ClassPath(paths ...string) *Operation {
	appendAbs(&op.classPath, paths)
	return op
}

// ClassPathFiles is ClassPath for *os.File values.
func (op *Operation) ClassPathFiles(files ...*os.File) *Operation {
	return op.ClassPath(fileNames(files)...)
}

// ClassPathPaths is ClassPath for Path values.
func (op *Operation) ClassPathPaths(paths ...Path) *Operation {
	return op.ClassPath(pathStrings(paths)...)
}

// ClassPathList returns the live classpath collection.
func (op *Operation) ClassPathList() *List[string] { return &op.classPath }

// Config appends detekt configuration files.
func (op *Operation) Config(paths ...string) *Operation {
	appendAbs(&op.config, paths)
	return op
}

// ConfigFiles is Config for *os.File values.
func (op *Operation) ConfigFiles(files ...*os.File) *Operation {
	return op.Config(fileNames(files)...)
}

// ConfigPaths is Config for Path values.
func (op *Operation) ConfigPaths(paths ...Path) *Operation {
	return op.Config(pathStrings(paths)...)
}

// ConfigList returns the live config collection.
func (op *Operation) ConfigList() *List[string] { return &op.config }

// ConfigResource sets a config file on detekt's own classpath.
func (op *Operation) ConfigResource(path string) *Operation {
	op.settings.ConfigResource = absPath(path)
	return op
}

// ConfigResourceFile is ConfigResource for an *os.File.
func (op *Operation) ConfigResourceFile(f *os.File) *Operation {
	if f == nil {
		return op
	}
	return op.ConfigResource(f.Name())
}

// ConfigResourceOf is ConfigResource for a Path.
func (op *Operation) ConfigResourceOf(p Path) *Operation { return op.ConfigResource(p.String()) }

// CreateBaseline writes the current findings to the baseline file.
func (op *Operation) CreateBaseline(v bool) *Operation {
	op.settings.CreateBaseline = v
	return op
}

// Debug prints extra information about configurations and extensions.
func (op *Operation) Debug(v bool) *Operation {
	op.settings.Debug = v
	return op
}

// DisableDefaultRuleSets turns off detekt's default rule sets.
func (op *Operation) DisableDefaultRuleSets(v bool) *Operation {
	op.settings.DisableDefaultRuleSets = v
	return op
}

// Excludes appends patterns of paths to leave out of the analysis. They are
// patterns, not files, so they are kept as written and there are no *os.File
// or Path variants.
func (op *Operation) Excludes(patterns ...string) *Operation {
	op.excludes.Append(patterns...)
	return op
}

// ExcludesList returns the live excludes collection.
func (op *Operation) ExcludesList() *List[string] { return &op.excludes }

// GenerateConfig exports detekt's default config.
func (op *Operation) GenerateConfig(v bool) *Operation {
	op.settings.GenerateConfig = v
	return op
}

// Includes appends patterns of paths to analyze. Like Excludes they are kept
// as written, with no *os.File or Path variants.
func (op *Operation) Includes(patterns ...string) *Operation {
	op.includes.Append(patterns...)
	return op
}

// IncludesList returns the live includes collection.
func (op *Operation) IncludesList() *List[string] { return &op.includes }

// Input appends source paths to analyze.
func (op *Operation) Input(paths ...string) *Operation {
	appendAbs(&op.input, paths)
	return op
}

// InputFiles is Input for *os.File values.
func (op *Operation) InputFiles(files ...*os.File) *Operation {
	return op.Input(fileNames(files)...)
}

// InputPaths is Input for Path values.
func (op *Operation) InputPaths(paths ...Path) *Operation {
	return op.Input(pathStrings(paths)...)
}

// InputList returns the live input collection.
func (op *Operation) InputList() *List[string] { return &op.input }

// JdkHome sets a custom JDK home to include into the classpath.
func (op *Operation) JdkHome(path string) *Operation {
	op.settings.JdkHome = path
	return op
}

// JvmTarget sets the target bytecode version used for type resolution.
func (op *Operation) JvmTarget(target string) *Operation {
	op.settings.JvmTarget = target
	return op
}

// LanguageVersion sets the Kotlin language compatibility version.
func (op *Operation) LanguageVersion(version string) *Operation {
	op.settings.LanguageVersion = version
	return op
}

// MaxIssues makes detekt exit 0 only while the number of findings does not
// exceed max. Zero leaves detekt's default in place.
func (op *Operation) MaxIssues(max int) *Operation {
	op.settings.MaxIssues = max
	return op
}

// Parallel enables parallel compilation and analysis.
func (op *Operation) Parallel(v bool) *Operation {
	op.settings.Parallel = v
	return op
}

// Plugins appends extra rule set jars.
func (op *Operation) Plugins(paths ...string) *Operation {
	appendAbs(&op.plugins, paths)
	return op
}

// PluginsFiles is Plugins for *os.File values.
func (op *Operation) PluginsFiles(files ...*os.File) *Operation {
	return op.Plugins(fileNames(files)...)
}

// PluginsPaths is Plugins for Path values.
func (op *Operation) PluginsPaths(paths ...Path) *Operation {
	return op.Plugins(pathStrings(paths)...)
}

// PluginsList returns the live plugins collection.
func (op *Operation) PluginsList() *List[string] { return &op.plugins }

// Report appends report descriptors. Zero-value reports are dropped with
// a warning.
func (op *Operation) Report(reports ...Report) *Operation {
	for _, r := range reports {
		if !r.Valid() {
			op.logger.Warn("ignoring invalid report", "report", r.Arg())
			continue
		}
		op.reports.Append(r)
	}
	return op
}

// ReportList returns the live report collection.
func (op *Operation) ReportList() *List[Report] { return &op.reports }

func appendAbs(l *List[string], paths []string) {
	for _, p := range paths {
		if abs := absPath(p); abs != "" {
			l.Append(abs)
		}
	}
}
