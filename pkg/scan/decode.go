package scan

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/errors"
)

// Raw report shapes, mirroring the scanner's JSON output. Only the fields
// this system consumes are declared; everything else, including the
// per-finding line numbers, is ignored by the decoder.
type rawReport struct {
	Headers []rawHeader `json:"headers"`
	Files   []rawFile   `json:"files"`
}

type rawHeader struct {
	ToolName    string `json:"tool_name"`
	ToolVersion string `json:"tool_version"`
}

type rawFile struct {
	Path               string         `json:"path"`
	Type               string         `json:"type"`
	SHA1               string         `json:"sha1"`
	Licenses           []rawLicense   `json:"licenses"`
	LicenseExpressions []string       `json:"license_expressions"`
	Copyrights         []rawCopyright `json:"copyrights"`
}

type rawLicense struct {
	Key string `json:"key"`
}

type rawCopyright struct {
	// Newer scanner releases emit "copyright", older ones "value".
	Statement string `json:"copyright"`
	Value     string `json:"value"`
}

// Decode reads a raw scanner JSON report and converts it into a Result:
// directories are skipped, the root path segment is stripped, and per-file
// findings are reduced to the reconciliation-relevant fields.
func Decode(r io.Reader) (*Result, error) {
	var report rawReport
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	tool := ToolSignature{}
	if len(report.Headers) > 0 {
		tool.Name = report.Headers[0].ToolName
		tool.Version = report.Headers[0].ToolVersion
	}
	if tool.Name == "" {
		return nil, errors.NewParseError("json", "", "scanner report has no tool header", nil)
	}

	files := make([]*File, 0, len(report.Files))
	for _, rf := range report.Files {
		if rf.Type == "directory" {
			continue
		}
		f := &File{
			Path: stripRoot(rf.Path),
			SHA1: rf.SHA1,
			Findings: Findings{
				LicenseExpressions: rf.LicenseExpressions,
			},
		}
		for _, lic := range rf.Licenses {
			if lic.Key != "" {
				f.Findings.Licenses = append(f.Findings.Licenses, lic.Key)
			}
		}
		for _, c := range rf.Copyrights {
			if s := c.statement(); s != "" {
				f.Findings.Copyrights = append(f.Findings.Copyrights, s)
			}
		}
		files = append(files, f)
	}

	return NewResult(tool, files), nil
}

// LoadFile reads and decodes a scanner report from path.
func LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	result, err := Decode(f)
	if err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return result, nil
}

// statement returns the copyright text regardless of scanner vintage.
func (c rawCopyright) statement() string {
	if c.Statement != "" {
		return c.Statement
	}
	return c.Value
}

// stripRoot removes the leading path segment: scanner output paths are
// rooted at the unpacked archive directory, which differs between two
// versions of the same package.
func stripRoot(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
