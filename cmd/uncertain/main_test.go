package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sheet = `
quantities:
  a: "2±0.2"
steps:
  - name: half
    op: div
    a: a
    b: 2
`

func TestRunText(t *testing.T) {
	path := writeSheet(t, "sheet.yaml", sheet)
	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "a = 2±0.2\nhalf = 1±0.1\n", stdout.String())
}

func TestRunJSON(t *testing.T) {
	path := writeSheet(t, "sheet.txt", sheet)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-format", "yaml", "-json", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out []map[string]any
	require.NoError(t, sonic.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "half", out[1]["name"])
	assert.Equal(t, "1±0.1", out[1]["text"])
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		code int
	}{
		{"no arguments", func(t *testing.T) []string { return nil }, 2},
		{"unknown extension", func(t *testing.T) []string { return []string{writeSheet(t, "sheet.txt", sheet)} }, 2},
		{"missing file", func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "none.yaml")} }, 1},
		{"bad step", func(t *testing.T) []string {
			return []string{writeSheet(t, "bad.json", `{"steps":[{"name":"x","op":"/","a":"1±0.1","b":0}]}`)}
		}, 1},
		{"empty worksheet", func(t *testing.T) []string {
			return []string{"-max-steps", "0", writeSheet(t, "ok.json", `{"steps":[]}`)}
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args(t), &stdout, &stderr))
		})
	}
}

func TestRunNonFinite(t *testing.T) {
	path := writeSheet(t, "overflow.yaml", "quantities:\n  x: \"1e308±1\"\nsteps:\n  - name: y\n    op: \"*\"\n    a: x\n    b: 10\n")

	for _, args := range [][]string{{path}, {"-json", path}} {
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)

		assert.Equal(t, 1, code, args)
		assert.Empty(t, stdout.String(), args)
		assert.Contains(t, stderr.String(), "non-finite result", args)
		assert.Contains(t, stderr.String(), `step "y"`, args)
	}
}
