package detekt

import (
	"os"
	"strconv"
	"strings"

	"github.com/sofmeright/detekt-op/src/process"
)

// Join delimiters are part of detekt's command line contract.
const (
	configSeparator = ";"
	listSeparator   = ","
)

// CommandList builds the full java command line that runs detekt with the
// current options. It fails with ErrNoProject when no project is bound and
// never modifies the operation.
func (op *Operation) CommandList() ([]string, error) {
	if op.project == nil {
		return nil, ErrNoProject
	}

	jars, err := Jars(op.project.LibDirectory())
	if err != nil {
		return nil, err
	}
	if len(jars) == 0 {
		op.logger.Warn("no detekt jars found", "dir", op.project.LibDirectory())
	}

	args := []string{
		op.java,
		"-cp", strings.Join(jars, string(os.PathListSeparator)),
		MainClass,
	}
	args = append(args, op.Args()...)

	op.logger.Debug("detekt command", "argv", process.CommandLine(args))
	return args, nil
}

// Args returns the detekt arguments alone, without the java launcher,
// classpath and main class. It does not require a project.
func (op *Operation) Args() []string {
	s := op.settings
	var args []string

	flag := func(on bool, name string) {
		if on {
			args = append(args, name)
		}
	}
	value := func(name, v string) {
		if v != "" {
			args = append(args, name, v)
		}
	}
	list := func(name string, l *List[string], sep string) {
		if l.Len() > 0 {
			args = append(args, name, joinList(l, sep))
		}
	}

	flag(s.AllRules, "--all-rules")
	flag(s.AutoCorrect, "--auto-correct")
	value("--base-path", s.BasePath)
	value("--baseline", s.Baseline)
	flag(s.BuildUponDefaultConfig, "--build-upon-default-config")
	list("--classpath", &op.classPath, string(os.PathListSeparator))
	list("-config", &op.config, configSeparator)
	value("--config-resource", s.ConfigResource)
	flag(s.CreateBaseline, "--create-baseline")
	flag(s.Debug, "--debug")
	flag(s.DisableDefaultRuleSets, "--disable-default-rulesets")
	list("--excludes", &op.excludes, listSeparator)
	flag(s.GenerateConfig, "--generate-config")
	list("--includes", &op.includes, listSeparator)
	list("--input", &op.input, listSeparator)
	value("--jdk-home", s.JdkHome)
	value("--jvm-target", s.JvmTarget)
	value("--language-version", s.LanguageVersion)
	if s.MaxIssues > 0 {
		args = append(args, "--max-issues", strconv.Itoa(s.MaxIssues))
	}
	flag(s.Parallel, "--parallel")
	list("--plugins", &op.plugins, listSeparator)
	op.reports.Each(func(r Report) {
		if r.Valid() {
			args = append(args, "--report", r.Arg())
		}
	})

	return args
}
