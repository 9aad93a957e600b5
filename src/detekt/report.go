package detekt

import (
	"fmt"
	"strings"
)

// ReportKind is the output format of a generated report.
type ReportKind int

// Report kinds supported by detekt, in the order detekt lists them.
const (
	ReportTXT ReportKind = iota + 1
	ReportXML
	ReportHTML
	ReportMD
	ReportSARIF
)

var reportKindNames = map[ReportKind]string{
	ReportTXT:   "txt",
	ReportXML:   "xml",
	ReportHTML:  "html",
	ReportMD:    "md",
	ReportSARIF: "sarif",
}

// ReportKinds returns every valid kind in declaration order.
func ReportKinds() []ReportKind {
	return []ReportKind{ReportTXT, ReportXML, ReportHTML, ReportMD, ReportSARIF}
}

// Valid reports whether k is one of the declared kinds.
func (k ReportKind) Valid() bool {
	_, ok := reportKindNames[k]
	return ok
}

// String returns the lowercase report id detekt expects on the command line.
func (k ReportKind) String() string {
	if name, ok := reportKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("reportkind(%d)", int(k))
}

// ParseReportKind maps a report id (case-insensitive) to its kind.
func ParseReportKind(s string) (ReportKind, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, k := range ReportKinds() {
		if reportKindNames[k] == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown report kind %q (supported: txt, xml, html, md, sarif)", s)
}

// Report asks detekt to write one additional output artifact. Build one
// with NewReport or ParseReport; the zero value is not a valid report.
type Report struct {
	kind ReportKind
	path string
}

// NewReport validates kind before building the descriptor.
func NewReport(kind ReportKind, path string) (Report, error) {
	if !kind.Valid() {
		return Report{}, fmt.Errorf("invalid report kind %d", int(kind))
	}
	if strings.TrimSpace(path) == "" {
		return Report{}, fmt.Errorf("report %s: path is required", kind)
	}
	return Report{kind: kind, path: path}, nil
}

// ParseReport parses the "kind:path" form used on the command line.
func ParseReport(s string) (Report, error) {
	id, path, ok := strings.Cut(s, ":")
	if !ok {
		return Report{}, fmt.Errorf("report %q: expected kind:path", s)
	}
	kind, err := ParseReportKind(id)
	if err != nil {
		return Report{}, err
	}
	return NewReport(kind, path)
}

// Kind is the report format.
func (r Report) Kind() ReportKind { return r.kind }

// Path is where detekt writes the report.
func (r Report) Path() string { return r.path }

// Valid reports whether r came from NewReport or ParseReport.
func (r Report) Valid() bool { return r.kind.Valid() && strings.TrimSpace(r.path) != "" }

// Arg renders the report as the value of a --report flag.
func (r Report) Arg() string {
	return r.kind.String() + ":" + r.path
}
