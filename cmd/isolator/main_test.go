package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ringBoard = "3 3 1 2\nring\n+-+\n|.|\n+-+\n"

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Ring(t *testing.T) {
	code, out, _ := runCLI(t, ringBoard)
	require.Equal(t, 0, code)
	assert.Equal(t, "0 0\n2 0\n", out)
}

func TestRun_Cases(t *testing.T) {
	cases := []struct {
		name  string
		board string
		code  int
		out   string
	}{
		{"ZeroTarget", "3 3 1 0\nring\n+-+\n|.|\n+-+\n", 0, ""},
		{"NoRunLimitTakesFirstCells", "3 1 0 2\nline\n+-+\n", 0, "0 0\n1 0\n"},
		{"IsolatedCells", "3 3 2 2\ndots\n+.+\n...\n...\n", 0, "0 0\n2 0\n"},
		{"Insufficient", "3 1 1 3\nline\n+-+\n", 1, ""},
		{"BadCell", "3 1 1 1\nline\n+x+\n", 1, ""},
		{"Truncated", "3 2 1 1\nline\n+-+\n", 1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := runCLI(t, tc.board)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.out, out)
		})
	}
}

func TestRun_FileMetricsRender(t *testing.T) {
	dir := t.TempDir()
	boardPath := filepath.Join(dir, "ring.board")
	require.NoError(t, os.WriteFile(boardPath, []byte(ringBoard), 0o600))
	promPath := filepath.Join(dir, "isolator.prom")

	code, out, errOut := runCLI(t, "", "-metrics-file", promPath, "-render", boardPath)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0 0\n2 0\n", out)
	assert.Contains(t, errOut, "*-*\n|.|\n+-+\n")

	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "isolator_components 1")
	assert.Contains(t, string(data), `isolator_reductions_total{rule="fold"} 2`)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "isolator.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("solver:\n  size_kernel: full\nplan:\n  order: vertices\n"), 0o600))

	code, out, _ := runCLI(t, ringBoard, "-config", cfgPath)
	require.Equal(t, 0, code)
	assert.Equal(t, "0 0\n2 0\n", out)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solver:\n  turbo: true\n"), 0o600))
	code, _, errOut := runCLI(t, ringBoard, "-config", bad)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "isolator:")
}

func TestRun_Usage(t *testing.T) {
	code, _, _ := runCLI(t, "", "a.board", "b.board")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "", "-no-such-flag")
	assert.Equal(t, 2, code)

	code, _, errOut := runCLI(t, "", filepath.Join(t.TempDir(), "missing.board"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open board")
}
