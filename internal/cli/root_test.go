// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmatrix/internal/cli"
	"github.com/katalvlaran/lvmatrix/internal/matfile"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

const doc = `
[[matrix]]
name = "a"
rows = [[1, 4, 4], [1, 2, 2], [4, 1, 2]]

[[matrix]]
name = "b"
rows = [[3, -5, 7], [-1, -3, 7], [-2, 12, 1]]

[[matrix]]
name = "wide"
rows = [[3, 2, -1, -5], [2, -7, -2, 6]]

[[matrix]]
name = "tall"
rows = [[1, 2, 3], [-3, 4, -5], [-2, 7.4, -6], [2.3, -2, 1.2]]

[[matrix]]
name = "singular"
rows = [[1, 1, 1], [2, 2, 2], [3, 3, 3]]

[[matrix]]
name = "near"
rows = [[1, 4, 4], [1, 2, 2], [4, 1, 2.001]]

[[matrix]]
name = "bad"
rows = [[nan, 1]]
`

// writeDoc stores the fixture document in a temp dir and returns its path.
func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

// run executes matrixctl and returns exit code, stdout and stderr.
func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

// result decodes the single-entry document printed by a matrix command.
func result(t *testing.T, out string) *matrix.Dense {
	t.Helper()
	d, err := matfile.Decode(strings.NewReader(out))
	require.NoError(t, err, out)
	require.Equal(t, 1, d.Len())
	m, err := d.Get(d.Names()[0])
	require.NoError(t, err)

	return m
}

func fromRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNames(t *testing.T) {
	code, out, _ := run(t, "-f", writeDoc(t), "names")
	require.Zero(t, code)
	require.Equal(t, "a\nb\nwide\ntall\nsingular\nnear\nbad\n", out)
}

func TestDet(t *testing.T) {
	code, out, _ := run(t, "--file", writeDoc(t), "det", "b")
	require.Zero(t, code)
	require.Equal(t, "-322\n", out)
}

func TestTrace(t *testing.T) {
	code, out, _ := run(t, "-f", writeDoc(t), "trace", "a")
	require.Zero(t, code)
	require.Equal(t, "5\n", out)
}

func TestInverse(t *testing.T) {
	code, out, _ := run(t, "-f", writeDoc(t), "inverse", "a")
	require.Zero(t, code)
	want := fromRows(t, []float64{-1, 2, 0}, []float64{-3, 7, -1}, []float64{3.5, -7.5, 1})
	require.True(t, want.Equal(result(t, out)), out)
}

func TestMul(t *testing.T) {
	code, out, _ := run(t, "-f", writeDoc(t), "--name", "product", "mul", "wide", "tall")
	require.Zero(t, code)
	require.Contains(t, out, "product")
	want := fromRows(t, []float64{-12.5, 16.6, -1}, []float64{40.8, -50.8, 60.2})
	require.True(t, want.Equal(result(t, out)), out)
}

func TestTransposeAndScale(t *testing.T) {
	path := writeDoc(t)

	code, out, _ := run(t, "-f", path, "transpose", "wide")
	require.Zero(t, code)
	got := result(t, out)
	require.Equal(t, 4, got.Rows())
	require.Equal(t, 2, got.Cols())

	code, out, _ = run(t, "-f", path, "scale", "a", "0.5")
	require.Zero(t, code)
	want := fromRows(t, []float64{0.5, 2, 2}, []float64{0.5, 1, 1}, []float64{2, 0.5, 1})
	require.True(t, want.Equal(result(t, out)), out)

	code, _, errOut := run(t, "-f", path, "scale", "a", "half")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "invalid flag value")
}

func TestAddSub(t *testing.T) {
	path := writeDoc(t)

	code, out, _ := run(t, "-f", path, "add", "a", "b")
	require.Zero(t, code)
	sum := result(t, out)

	a := fromRows(t, []float64{1, 4, 4}, []float64{1, 2, 2}, []float64{4, 1, 2})
	b := fromRows(t, []float64{3, -5, 7}, []float64{-1, -3, 7}, []float64{-2, 12, 1})
	want, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, want.Equal(sum))

	code, out, _ = run(t, "-f", path, "sub", "a", "a")
	require.Zero(t, code)
	zero, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.True(t, zero.Equal(result(t, out)))
}

func TestEq(t *testing.T) {
	path := writeDoc(t)

	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"eq", "a", "a"}, "true\n"},
		{[]string{"eq", "a", "near"}, "false\n"},
		{[]string{"--eps", "0.01", "eq", "a", "near"}, "true\n"},
		{[]string{"eq", "--rtol", "0.001", "a", "near"}, "true\n"},
		{[]string{"eq", "a", "wide"}, "false\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			code, out, _ := run(t, append([]string{"-f", path}, tc.args...)...)
			require.Zero(t, code)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestErrors(t *testing.T) {
	path := writeDoc(t)

	for _, tc := range []struct {
		name    string
		args    []string
		message string
	}{
		{"singular", []string{"-f", path, "inverse", "singular"}, matrix.ErrSingular.Error()},
		{"non-square", []string{"-f", path, "det", "wide"}, matrix.ErrNonSquare.Error()},
		{"mismatch", []string{"-f", path, "add", "a", "wide"}, matrix.ErrDimensionMismatch.Error()},
		{"missing", []string{"-f", path, "show", "zzz"}, matfile.ErrNotFound.Error()},
		{"non-finite", []string{"-f", path, "show", "bad"}, matrix.ErrNaNInf.Error()},
		{"no file", []string{"det", "a"}, cli.ErrNoFile.Error()},
		{"negative eps", []string{"-f", path, "--eps=-1", "det", "a"}, "invalid flag value"},
		{"log level", []string{"-f", path, "--log-level", "loud", "det", "a"}, "invalid flag value"},
		{"arity", []string{"-f", path, "mul", "a"}, "accepts 2 arg(s)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, tc.args...)
			require.Equal(t, 1, code)
			require.Empty(t, out)
			require.Contains(t, errOut, tc.message)
		})
	}
}

func TestAllowNonFinite(t *testing.T) {
	code, out, _ := run(t, "-f", writeDoc(t), "--allow-nonfinite", "show", "bad")
	require.Zero(t, code)
	require.Contains(t, out, "nan")
}

// TestEnvAndConfig checks that MATRIXCTL_* variables and --config supply defaults.
func TestEnvAndConfig(t *testing.T) {
	path := writeDoc(t)

	t.Run("env", func(t *testing.T) {
		t.Setenv("MATRIXCTL_FILE", path)
		t.Setenv("MATRIXCTL_EPS", "0.01")
		code, out, _ := run(t, "eq", "a", "near")
		require.Zero(t, code)
		require.Equal(t, "true\n", out)
	})

	t.Run("config", func(t *testing.T) {
		cfg := filepath.Join(t.TempDir(), "matrixctl.toml")
		body := fmt.Sprintf("file = %q\nlog-level = \"debug\"\n", path)
		require.NoError(t, os.WriteFile(cfg, []byte(body), 0o600))

		code, out, errOut := run(t, "--config", cfg, "det", "b")
		require.Zero(t, code)
		require.Equal(t, "-322\n", out)
		require.Contains(t, errOut, "document loaded")
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("MATRIXCTL_FILE", filepath.Join(t.TempDir(), "absent.toml"))
		code, out, _ := run(t, "-f", path, "det", "b")
		require.Zero(t, code)
		require.Equal(t, "-322\n", out)
	})

	t.Run("missing config", func(t *testing.T) {
		code, _, _ := run(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "names")
		require.Equal(t, 1, code)
	})
}

func TestNewRootCommand(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCommand(&out, &out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "matrixctl")
	require.Contains(t, out.String(), "cofactors")
}
