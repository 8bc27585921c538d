// Package scan models per-file license and copyright scan results as
// produced by an external static scanner run and consumed by the delta
// classifier.
//
// Only the findings relevant to IP reconciliation are retained per file:
// license identifiers, license expressions and copyright statements. Line
// number sub-fields from the raw scanner output are dropped at decode time
// so that two scans of unmodified content compare equal.
package scan

// EmptyFileSHA1 is the well-known digest of zero-length content. Empty
// files are excluded from move detection: their hash carries no identity.
const EmptyFileSHA1 = "da39a3ee5e6b4b0d3255bfef95601890afd80709"

// KnownTools lists the scanner names whose output this package understands.
var KnownTools = map[string]bool{
	"scancode-toolkit": true,
}

// ToolSignature identifies the scanner invocation that produced a result.
// Two results are only comparable when their signatures are identical and
// the tool is recognized.
type ToolSignature struct {
	Name    string
	Version string
}

// String renders the signature as "name version".
func (t ToolSignature) String() string {
	if t.Version == "" {
		return t.Name
	}
	return t.Name + " " + t.Version
}

// Known reports whether the signature names a recognized scanner.
func (t ToolSignature) Known() bool {
	return KnownTools[t.Name]
}

// Findings holds the reconciliation-relevant fields of one scanned file.
type Findings struct {
	Licenses           []string
	LicenseExpressions []string
	Copyrights         []string
}

// Empty reports whether no license or copyright information was found.
func (f Findings) Empty() bool {
	return len(f.Licenses) == 0 && len(f.LicenseExpressions) == 0 && len(f.Copyrights) == 0
}

// File is one scanned file: its root-stripped relative path, content hash
// and findings.
type File struct {
	Path     string
	SHA1     string
	Findings Findings
}

// Result is a complete scan of one package tree, keyed by path.
type Result struct {
	Tool  ToolSignature
	Files map[string]*File
}

// NewResult builds a Result from files, keyed by their paths.
func NewResult(tool ToolSignature, files []*File) *Result {
	r := &Result{Tool: tool, Files: make(map[string]*File, len(files))}
	for _, f := range files {
		r.Files[f.Path] = f
	}
	return r
}

// ByHash builds a reverse index of the result's files keyed by content
// hash. Empty files are skipped. When several paths share a hash the
// lexicographically smallest path wins, keeping the index deterministic.
func (r *Result) ByHash() map[string]string {
	index := make(map[string]string, len(r.Files))
	for path, f := range r.Files {
		if f.SHA1 == "" || f.SHA1 == EmptyFileSHA1 {
			continue
		}
		if prev, ok := index[f.SHA1]; ok && prev <= path {
			continue
		}
		index[f.SHA1] = path
	}
	return index
}
