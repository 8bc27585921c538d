package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
  "headers": [
    {"tool_name": "scancode-toolkit", "tool_version": "21.8.4"}
  ],
  "files": [
    {"path": "zlib-1.2.11", "type": "directory"},
    {
      "path": "zlib-1.2.11/zlib.h",
      "type": "file",
      "sha1": "aaaa000011112222333344445555666677778888",
      "licenses": [{"key": "zlib", "start_line": 4, "end_line": 22}],
      "license_expressions": ["zlib"],
      "copyrights": [{"copyright": "Copyright (c) 1995-2017 Jean-loup Gailly", "start_line": 4, "end_line": 5}]
    },
    {
      "path": "zlib-1.2.11/empty.c",
      "type": "file",
      "sha1": "da39a3ee5e6b4b0d3255bfef95601890afd80709",
      "licenses": [],
      "license_expressions": [],
      "copyrights": []
    },
    {
      "path": "zlib-1.2.11/old-style.c",
      "type": "file",
      "sha1": "bbbb000011112222333344445555666677778888",
      "copyrights": [{"value": "Copyright 2001 Mark Adler"}]
    }
  ]
}`

func TestDecode(t *testing.T) {
	result, err := Decode(strings.NewReader(sampleReport))
	require.NoError(t, err)

	assert.Equal(t, ToolSignature{Name: "scancode-toolkit", Version: "21.8.4"}, result.Tool)
	assert.True(t, result.Tool.Known())

	// Directory entries are skipped, the root segment is stripped.
	require.Len(t, result.Files, 3)
	f := result.Files["zlib.h"]
	require.NotNil(t, f)
	assert.Equal(t, []string{"zlib"}, f.Findings.Licenses)
	assert.Equal(t, []string{"zlib"}, f.Findings.LicenseExpressions)
	assert.Equal(t, []string{"Copyright (c) 1995-2017 Jean-loup Gailly"}, f.Findings.Copyrights)
	assert.False(t, f.Findings.Empty())

	// Old scanner releases emit "value" instead of "copyright".
	old := result.Files["old-style.c"]
	require.NotNil(t, old)
	assert.Equal(t, []string{"Copyright 2001 Mark Adler"}, old.Findings.Copyrights)

	empty := result.Files["empty.c"]
	require.NotNil(t, empty)
	assert.Equal(t, EmptyFileSHA1, empty.SHA1)
	assert.True(t, empty.Findings.Empty())
}

func TestDecodeMissingHeader(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"headers": [], "files": []}`))
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"headers": [`))
	assert.Error(t, err)
}

func TestByHash(t *testing.T) {
	result := NewResult(ToolSignature{Name: "scancode-toolkit", Version: "21.8.4"}, []*File{
		{Path: "b.c", SHA1: "1111"},
		{Path: "a.c", SHA1: "1111"}, // duplicate content: smallest path wins
		{Path: "c.c", SHA1: "2222"},
		{Path: "empty", SHA1: EmptyFileSHA1},
		{Path: "nohash", SHA1: ""},
	})

	index := result.ByHash()
	assert.Equal(t, map[string]string{"1111": "a.c", "2222": "c.c"}, index)
}

func TestStripRoot(t *testing.T) {
	assert.Equal(t, "src/main.c", stripRoot("pkg-1.0/src/main.c"))
	assert.Equal(t, "README", stripRoot("pkg-1.0/README"))
	assert.Equal(t, "bare", stripRoot("bare"))
}

func TestToolSignatureString(t *testing.T) {
	assert.Equal(t, "scancode-toolkit 21.8.4", ToolSignature{Name: "scancode-toolkit", Version: "21.8.4"}.String())
	assert.Equal(t, "scancode-toolkit", ToolSignature{Name: "scancode-toolkit"}.String())
	assert.False(t, ToolSignature{Name: "other-scanner"}.Known())
}
