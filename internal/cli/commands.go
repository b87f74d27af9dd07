// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvmatrix/internal/matfile"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/spf13/cobra"
)

// unaryOp maps one matrix to a new one.
type unaryOp func(m *matrix.Dense) (*matrix.Dense, error)

// binaryOp combines two matrices into a new one without mutating them.
type binaryOp func(a, b *matrix.Dense) (*matrix.Dense, error)

func transposeOp(m *matrix.Dense) (*matrix.Dense, error) { return matrix.Transpose(m) }
func cofactorsOp(m *matrix.Dense) (*matrix.Dense, error) { return m.Cofactors() }
func inverseOp(m *matrix.Dense) (*matrix.Dense, error)   { return m.Inverse() }

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List matrix names in document order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := a.load()
			if err != nil {
				return err
			}
			for _, name := range doc.Names() {
				fmt.Fprintln(a.out, name)
			}

			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print one matrix as a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.operands(args[0])
			if err != nil {
				return err
			}

			return matfile.Encode(a.out, matfile.Entry{Name: args[0], Matrix: ms[0]})
		},
	}
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det NAME",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.operands(args[0])
			if err != nil {
				return err
			}
			det, err := ms[0].Determinant()
			if err != nil {
				return err
			}
			a.logger.Debug("determinant", "name", args[0], "shape", shape(ms[0]))
			fmt.Fprintln(a.out, strconv.FormatFloat(det, 'g', -1, 64))

			return nil
		},
	}
}

func (a *app) traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace NAME",
		Short: "Print the sum of the main diagonal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.operands(args[0])
			if err != nil {
				return err
			}
			tr, err := ms[0].Trace()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, strconv.FormatFloat(tr, 'g', -1, 64))

			return nil
		},
	}
}

func (a *app) unaryCmd(use, short string, op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.operands(args[0])
			if err != nil {
				return err
			}
			res, err := op(ms[0])
			if err != nil {
				return err
			}
			a.logger.Debug(use, "name", args[0], "in", shape(ms[0]), "out", shape(res))

			return a.emit(res)
		},
	}
}

func (a *app) binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.operands(args[0], args[1])
			if err != nil {
				return err
			}
			res, err := op(ms[0], ms[1])
			if err != nil {
				return err
			}
			a.logger.Debug(use, "a", shape(ms[0]), "b", shape(ms[1]), "out", shape(res))

			return a.emit(res)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale NAME FACTOR",
		Short: "Print FACTOR × NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			factor, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("factor %q: %w: %w", args[1], ErrBadFlag, err)
			}
			ms, err := a.operands(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Scale(ms[0], factor)
			if err != nil {
				return err
			}

			return a.emit(res)
		},
	}
}

func (a *app) eqCmd() *cobra.Command {
	var rtol float64
	cmd := &cobra.Command{
		Use:   "eq A B",
		Short: "Print whether A and B are equal within tolerance",
		Long: `Print "true" when A and B have the same shape and every pair of
elements differs by at most --eps. With --rtol the bound becomes
eps + rtol*|b| per element.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.operands(args[0], args[1])
			if err != nil {
				return err
			}
			equal := ms[0].Equal(ms[1])
			if rtol != 0 && matrix.ValidateSameShape(ms[0], ms[1]) == nil {
				if equal, err = matrix.AllClose(ms[0], ms[1], rtol, ms[0].Epsilon()); err != nil {
					return fmt.Errorf("rtol: %w: %w", ErrBadFlag, err)
				}
			}
			a.logger.Debug("eq", "a", shape(ms[0]), "b", shape(ms[1]), "rtol", rtol, "equal", equal)
			fmt.Fprintln(a.out, equal)

			return nil
		},
	}
	cmd.Flags().Float64Var(&rtol, "rtol", 0, "relative tolerance added to --eps")

	return cmd
}
