// SPDX-License-Identifier: MIT

// Package cli implements the matrixctl command tree.
//
// Settings resolve in viper order: flag, then MATRIXCTL_* environment
// variable, then the TOML file named by --config, then the default.
package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvmatrix/internal/matfile"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "MATRIXCTL"

	keyFile           = "file"
	keyEps            = "eps"
	keyLogLevel       = "log-level"
	keyAllowNonFinite = "allow-nonfinite"
	keyName           = "name"

	defaultLogLevel   = "warn"
	defaultResultName = "result"
)

var (
	// ErrNoFile is returned when no matrix document was configured.
	ErrNoFile = errors.New("no matrix file: set --file or MATRIXCTL_FILE")

	// ErrBadFlag reports a flag or argument value outside its domain.
	ErrBadFlag = errors.New("invalid flag value")
)

// app carries per-invocation state; every command tree gets its own.
type app struct {
	v      *viper.Viper
	logger *log.Logger
	out    io.Writer
}

// Execute runs matrixctl with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root, a := newRoot(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", "err", err)
		return 1
	}

	return 0
}

// NewRootCommand builds the matrixctl command tree writing results to stdout
// and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root, _ := newRoot(stdout, stderr)
	return root
}

func newRoot(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{
		v: viper.New(),
		logger: log.NewWithOptions(stderr, log.Options{
			Prefix: "matrixctl",
		}),
		out: stdout,
	}
	var cfgFile string

	root := &cobra.Command{
		Use:   "matrixctl",
		Short: "Dense matrix algebra over TOML matrix documents",
		Long: `matrixctl loads named matrices from a TOML document and runs one
operation on them, printing the result as a document, a number or a boolean.

Document format:
  [[matrix]]
  name = "a"
  rows = [[1, 2], [3, 4]]

Examples:
  matrixctl -f doc.toml det a
  matrixctl -f doc.toml mul a b
  matrixctl -f doc.toml --eps 1e-9 eq a b`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.configure(cfgFile)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "TOML config file with defaults for the flags below")
	flags.StringP(keyFile, "f", "", "matrix document (TOML)")
	flags.Float64(keyEps, matrix.DefaultEpsilon, "absolute tolerance for equality")
	flags.String(keyLogLevel, defaultLogLevel, "log level: debug, info, warn, error")
	flags.Bool(keyAllowNonFinite, false, "accept NaN and Inf cells in the document")
	flags.String(keyName, defaultResultName, "name of the matrix in printed documents")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	// Binding only fails for a nil flag set.
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.namesCmd(),
		a.showCmd(),
		a.detCmd(),
		a.traceCmd(),
		a.unaryCmd("transpose", "Print the transpose of a matrix", transposeOp),
		a.unaryCmd("cofactors", "Print the cofactor matrix of a square matrix", cofactorsOp),
		a.unaryCmd("inverse", "Print the inverse of a square matrix", inverseOp),
		a.binaryCmd("add", "Print A + B", matrix.Add),
		a.binaryCmd("sub", "Print A - B", matrix.Sub),
		a.binaryCmd("mul", "Print the matrix product A × B", matrix.Mul),
		a.binaryCmd("hadamard", "Print the element-wise product of A and B", matrix.Hadamard),
		a.scaleCmd(),
		a.eqCmd(),
	)

	return root, a
}

// configure reads the optional config file and applies the log level.
func (a *app) configure(cfgFile string) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		a.v.SetConfigType("toml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		a.logger.Debug("config loaded", "path", cfgFile)
	}

	lvl, err := log.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("%s: %w: %w", keyLogLevel, ErrBadFlag, err)
	}
	a.logger.SetLevel(lvl)

	return nil
}

// load opens the configured document with the configured tolerance.
func (a *app) load() (*matfile.Document, error) {
	path := a.v.GetString(keyFile)
	if path == "" {
		return nil, ErrNoFile
	}
	eps := a.v.GetFloat64(keyEps)
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, fmt.Errorf("%s=%v: %w", keyEps, eps, ErrBadFlag)
	}

	doc, err := matfile.Load(path, matrix.WithEpsilon(eps))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("document loaded", "file", path, "matrices", doc.Len(), "eps", eps)

	return doc, nil
}

// operands loads the document and fetches each named matrix.
func (a *app) operands(names ...string) ([]*matrix.Dense, error) {
	doc, err := a.load()
	if err != nil {
		return nil, err
	}
	out := make([]*matrix.Dense, len(names))
	for i, name := range names {
		m, err := doc.Get(name)
		if err != nil {
			return nil, err
		}
		if !a.v.GetBool(keyAllowNonFinite) {
			if err = matrix.CheckFinite(m); err != nil {
				return nil, fmt.Errorf("%q: %w", name, err)
			}
		}
		out[i] = m
	}

	return out, nil
}

// emit prints m as a one-entry document.
func (a *app) emit(m *matrix.Dense) error {
	return matfile.Encode(a.out, matfile.Entry{Name: a.v.GetString(keyName), Matrix: m})
}

// shape formats a matrix shape for log fields.
func shape(m *matrix.Dense) string {
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
