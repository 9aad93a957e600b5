package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sofmeright/detekt-op/src/detekt"
	"github.com/sofmeright/detekt-op/src/project"
)

// reportsValue collects repeated --report kind:path flags. Invalid kinds
// fail while flags are parsed.
type reportsValue struct {
	reports *[]detekt.Report
}

func (v *reportsValue) Set(s string) error {
	r, err := detekt.ParseReport(s)
	if err != nil {
		return err
	}
	*v.reports = append(*v.reports, r)
	return nil
}

func (v *reportsValue) String() string {
	args := make([]string, len(*v.reports))
	for i, r := range *v.reports {
		args[i] = r.Arg()
	}
	return strings.Join(args, ",")
}

func (v *reportsValue) Type() string { return "kind:path" }

// detektFlags are the command line counterparts of every detekt option plus
// the project and launcher overrides.
type detektFlags struct {
	fs *pflag.FlagSet

	allRules               bool
	autoCorrect            bool
	buildUponDefaultConfig bool
	createBaseline         bool
	debug                  bool
	disableDefaultRuleSets bool
	generateConfig         bool
	parallel               bool

	basePath        string
	baseline        string
	configResource  string
	jdkHome         string
	jvmTarget       string
	languageVersion string
	maxIssues       int

	classPath []string
	config    []string
	excludes  []string
	includes  []string
	input     []string
	plugins   []string
	reports   []detekt.Report

	java     string
	silent   bool
	libDir   string
	discover bool
}

func (f *detektFlags) register(fs *pflag.FlagSet) {
	f.fs = fs

	fs.BoolVar(&f.allRules, "all-rules", false, "activate all available (even unstable) rules")
	fs.BoolVar(&f.autoCorrect, "auto-correct", false, "allow rules to auto correct code if they support it")
	fs.BoolVar(&f.buildUponDefaultConfig, "build-upon-default-config", false, "preconfigure defaults and only override what the config sets")
	fs.BoolVar(&f.createBaseline, "create-baseline", false, "write a baseline of all current findings")
	fs.BoolVar(&f.debug, "debug", false, "print detekt debug information")
	fs.BoolVar(&f.disableDefaultRuleSets, "disable-default-rulesets", false, "disable the default rule sets")
	fs.BoolVar(&f.generateConfig, "generate-config", false, "export the default config to the --detekt-config path")
	fs.BoolVar(&f.parallel, "parallel", false, "compile and analyze files in parallel")

	fs.StringVar(&f.basePath, "base-path", "", "directory report paths are relative to")
	fs.StringVar(&f.baseline, "baseline", "", "baseline xml file")
	fs.StringVar(&f.configResource, "config-resource", "", "config file on the classpath")
	fs.StringVar(&f.jdkHome, "jdk-home", "", "JDK home for type resolution")
	fs.StringVar(&f.jvmTarget, "jvm-target", "", "target bytecode version for type resolution")
	fs.StringVar(&f.languageVersion, "language-version", "", "Kotlin language version for type resolution")
	fs.IntVar(&f.maxIssues, "max-issues", 0, "fail when more than this many issues are found (0 keeps detekt's default)")

	fs.StringArrayVar(&f.classPath, "classpath", nil, "analysis classpath entry for type resolution (repeatable)")
	fs.StringArrayVar(&f.config, "detekt-config", nil, "detekt config file (repeatable)")
	fs.StringArrayVar(&f.excludes, "excludes", nil, "glob of paths to exclude (repeatable)")
	fs.StringArrayVar(&f.includes, "includes", nil, "glob of paths to include (repeatable)")
	fs.StringArrayVar(&f.input, "input", nil, "file or directory to analyze (repeatable, default: src/{main,test}/kotlin)")
	fs.StringArrayVar(&f.plugins, "plugins", nil, "extra rule set jar (repeatable)")
	fs.Var(&reportsValue{reports: &f.reports}, "report", "report as kind:path, kinds: txt, xml, html, md, sarif (repeatable)")

	fs.StringVar(&f.java, "java", "", "java launcher (default: $JAVA_HOME/bin/java, then java)")
	fs.BoolVar(&f.silent, "silent", false, "suppress detekt-op's own status messages")
	f.registerProject(fs)
}

// registerProject adds only the flags that locate the project.
func (f *detektFlags) registerProject(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.libDir, "lib-dir", "", "directory holding the detekt jars (default: lib/bld)")
	fs.BoolVar(&f.discover, "discover", false, "root the project at the enclosing git repository")
}

// changed reports whether name was set on the command line.
func (f *detektFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply layers the command line over op. Booleans and scalars only
// override when given, so config values survive; lists append.
func (f *detektFlags) apply(op *detekt.Operation) {
	bools := []struct {
		name string
		v    bool
		set  func(bool) *detekt.Operation
	}{
		{"all-rules", f.allRules, op.AllRules},
		{"auto-correct", f.autoCorrect, op.AutoCorrect},
		{"build-upon-default-config", f.buildUponDefaultConfig, op.BuildUponDefaultConfig},
		{"create-baseline", f.createBaseline, op.CreateBaseline},
		{"debug", f.debug, op.Debug},
		{"disable-default-rulesets", f.disableDefaultRuleSets, op.DisableDefaultRuleSets},
		{"generate-config", f.generateConfig, op.GenerateConfig},
		{"parallel", f.parallel, op.Parallel},
	}
	for _, b := range bools {
		if f.changed(b.name) {
			b.set(b.v)
		}
	}

	strs := []struct {
		name string
		v    string
		set  func(string) *detekt.Operation
	}{
		{"base-path", f.basePath, op.BasePath},
		{"baseline", f.baseline, op.Baseline},
		{"config-resource", f.configResource, op.ConfigResource},
		{"jdk-home", f.jdkHome, op.JdkHome},
		{"jvm-target", f.jvmTarget, op.JvmTarget},
		{"language-version", f.languageVersion, op.LanguageVersion},
	}
	for _, s := range strs {
		if f.changed(s.name) {
			s.set(s.v)
		}
	}
	if f.changed("max-issues") {
		op.MaxIssues(f.maxIssues)
	}

	op.ClassPath(f.classPath...).
		Config(f.config...).
		Excludes(f.excludes...).
		Includes(f.includes...).
		Input(f.input...).
		Plugins(f.plugins...).
		Report(f.reports...)
}

// openProject resolves dir to a project using the config and flag overrides.
func (a *app) openProject(f *detektFlags, dir string) (*project.Project, error) {
	libDir := a.cfg.Project.LibDir
	if f.libDir != "" {
		libDir = f.libDir
	}
	opts := []project.Option{project.WithLibDirectory(libDir)}

	if a.cfg.Project.Discover || f.discover {
		return project.Discover(dir, opts...)
	}
	return project.New(dir, opts...)
}

// newOperation builds a fully configured operation for the project in dir.
// Config values come first, then flags, then the project binding, so an
// explicit baseline wins over a detected one.
func (a *app) newOperation(f *detektFlags, dir string, stdout, stderr io.Writer) (*detekt.Operation, *project.Project, error) {
	proj, err := a.openProject(f, dir)
	if err != nil {
		return nil, nil, err
	}

	logger := a.logger.Named("detekt").With("project", proj.WorkDirectory())
	opts := []detekt.Option{
		detekt.WithLogger(logger),
		detekt.WithRunner(a.newRunner(logger.Named("process"))),
		detekt.WithOutput(stdout, stderr),
		detekt.WithSilent(f.silent),
	}
	java := a.cfg.Java.Path
	if f.java != "" {
		java = f.java
	}
	if java != "" {
		opts = append(opts, detekt.WithJava(java))
	}

	op := detekt.New(opts...)
	if err := a.cfg.Detekt.Resolve(proj.WorkDirectory()).Apply(op); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	f.apply(op)

	if op.InputList().Len() == 0 && a.cfg.Project.Sources {
		op.Input(proj.KotlinSources()...)
	}
	op.FromProject(proj)
	return op, proj, nil
}

// projectDirs defaults to the current directory.
func projectDirs(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
