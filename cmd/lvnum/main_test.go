// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// indexed parses lines of the form "<prefix><i> = <value> ..." into a slice.
func indexed(t *testing.T, out, prefix string) []float64 {
	t.Helper()
	var vals []float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		var (
			i int
			v float64
		)
		_, err := fmt.Sscanf(line, prefix+"%d = %g", &i, &v)
		require.NoError(t, err, line)
		require.Equal(t, len(vals), i)
		vals = append(vals, v)
	}

	return vals
}

func TestZeros(t *testing.T) {
	// (z−1)(z−2)(z−3)
	out, _, err := run(t, "zeros", "--", "-6", "11", "-6", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	re := make([]float64, 0, 3)
	for _, line := range lines {
		f := strings.Fields(line)
		require.Len(t, f, 2)
		x, err := strconv.ParseFloat(f[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(strings.TrimSuffix(f[1], "i"), 64)
		require.NoError(t, err)
		assert.InDelta(t, 0, y, 1e-9)
		re = append(re, x)
	}
	sort.Float64s(re)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, re, 1e-9)
}

func TestZeros_BadArgument(t *testing.T) {
	_, _, err := run(t, "zeros", "1", "x")
	require.Error(t, err)
	_, _, err = run(t, "zeros", "1")
	require.Error(t, err)
}

func TestNonFiniteArguments(t *testing.T) {
	for _, args := range [][]string{
		{"zeros", "1", "nan", "1"},
		{"zeros", "--", "-inf", "0", "1"},
		{"stats", "1", "Inf"},
	} {
		_, _, err := run(t, args...)
		require.ErrorContains(t, err, "is not finite", "%v", args)
	}
}

func TestIntegrate(t *testing.T) {
	for _, tc := range []struct {
		fn, method, from, to string
		want                 float64
	}{
		{"sin", "simpson", "0", "3.141592653589793", 2},
		{"sin", "trapezoid", "0", "3.141592653589793", 2},
		{"exp", "lobatto", "0", "1", 1.718281828459045},
		{"cos", "gl20", "0", "1.5707963267948966", 1},
		{"gauss", "gl40", "-6", "6", 1.7724538509055159},
	} {
		t.Run(tc.fn+"/"+tc.method, func(t *testing.T) {
			out, _, err := run(t, "integrate", "--tol", "1e-8",
				"--fn", tc.fn, "--method", tc.method, "--from", tc.from, "--to", tc.to)
			require.NoError(t, err)
			v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-6)
		})
	}
}

func TestIntegrate_Unknown(t *testing.T) {
	_, _, err := run(t, "integrate", "--fn", "tan")
	require.ErrorContains(t, err, "unknown function")
	_, _, err = run(t, "integrate", "--method", "romberg")
	require.ErrorContains(t, err, "unknown method")
}

func TestFit(t *testing.T) {
	path := writeFile(t, "data.yaml", `
x: [0, 1, 2, 3, 4, 5]
y: [1, 6, 17, 34, 57, 86]
`)
	out, _, err := run(t, "fit", "--file", path, "--degree", "2")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, indexed(t, out, "a"), 1e-9)
	assert.Contains(t, out, "chi2 = ")
}

func TestFit_SVDCutIsIndependentOfTol(t *testing.T) {
	// singular values of the (1, x) design are about 4.1 and 1.09
	path := writeFile(t, "line.yaml", "x: [0, 1, 2, 3]\ny: [1, 3, 5, 7]\n")

	out, stderr, err := run(t, "--tol", "0.9", "fit", "-f", path, "-d", "1")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, indexed(t, out, "a"), 1e-12)
	assert.NotContains(t, stderr, "rank-deficient")

	out, stderr, err = run(t, "fit", "-f", path, "-d", "1", "--svd-cut", "0.5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rank-deficient")
	assert.Len(t, indexed(t, out, "a"), 2)

	_, _, err = run(t, "fit", "-f", path, "--svd-cut", "-1")
	require.ErrorContains(t, err, "--svd-cut")
	_, _, err = run(t, "fit", "-f", path, "--degree", "-1")
	require.ErrorContains(t, err, "--degree")
}

func TestFit_Errors(t *testing.T) {
	_, _, err := run(t, "fit")
	require.Error(t, err)

	_, _, err = run(t, "fit", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.yaml", "x: [1, 2\n")
	_, _, err = run(t, "fit", "--file", path)
	require.Error(t, err)
}

func TestSolve(t *testing.T) {
	path := writeFile(t, "system.yaml", `
a:
  - [5, 3, 7]
  - [2, 4, 9]
  - [3, 6, 4]
b: [20, 30, 7]
`)
	out, _, err := run(t, "solve", "-f", path)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, -1, 4}, indexed(t, out, "x"), 1e-12)
	assert.Contains(t, out, "rcond = ")
}

func TestSolve_Singular(t *testing.T) {
	path := writeFile(t, "system.yaml", "a: [[1, 2], [2, 4]]\nb: [1, 2]\n")
	_, _, err := run(t, "solve", "-f", path)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", "-p", "0.25", "--", "4", "1", "3", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "n = 4\n")
	assert.Contains(t, out, "mean = 2.5\n")
	assert.Contains(t, out, "min = 1\nmax = 4\n")
	assert.Contains(t, out, "p25 = 1.75\n")
}

func TestStats_SingleValueSkipsStdDev(t *testing.T) {
	out, _, err := run(t, "stats", "7")
	require.NoError(t, err)
	assert.NotContains(t, out, "stddev")
	assert.Contains(t, out, "p50 = 7\n")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "lvnum.yaml", `
tolerance: 0.001
log:
  level: debug
  color: false
`)
	_, stderr, err := run(t, "--config", cfg, "integrate", "--fn", "exp")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DBG")
	assert.Contains(t, stderr, "integrating")
	assert.Contains(t, stderr, "tol=0.001")

	// the flag wins over the file
	_, stderr, err = run(t, "--config", cfg, "--log-level", "warn", "integrate")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "integrating")
}

func TestConfigFile_ExplicitMissing(t *testing.T) {
	_, _, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "stats", "1")
	require.ErrorContains(t, err, "read config")
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "debug")
	t.Setenv("LVNUM_LOG_COLOR", "false")
	_, stderr, err := run(t, "stats", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DBG")
}
