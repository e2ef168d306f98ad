// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/curvefit"
	"github.com/katalvlaran/lvnum/function"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/poly"
	"github.com/katalvlaran/lvnum/quad"
	"github.com/katalvlaran/lvnum/stats"
)

// fitData is the YAML layout read by the fit command.
type fitData struct {
	X     []float64 `yaml:"x"`
	Y     []float64 `yaml:"y"`
	Sigma []float64 `yaml:"sigma,omitempty"`
}

// systemData is the YAML layout read by the solve command.
type systemData struct {
	A [][]float64 `yaml:"a"`
	B []float64   `yaml:"b"`
}

// integrands available to the integrate command.
var integrands = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"exp":   math.Exp,
	"gauss": func(x float64) float64 { return math.Exp(-x * x) },
}

func (a *app) zerosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zeros [--] c0 c1 ... cn",
		Short: "All complex zeros of c0 + c1·z + … + cn·zⁿ",
		Long: "All complex zeros of the polynomial with real coefficients c0..cn in\n" +
			"increasing power. Put -- before the list when a coefficient is negative.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coeffs, err := parseFloats(args)
			if err != nil {
				return err
			}
			p := poly.FromReal(coeffs...).Trim()
			a.log.Debug("finding zeros", "degree", p.Degree())

			zs, err := p.Zeros()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, z := range zs {
				fmt.Fprintf(out, "%.12g %+.12gi\n", real(z), imag(z))
			}

			return nil
		},
	}
}

func (a *app) fitCmd() *cobra.Command {
	var (
		file   string
		degree int
		svdCut float64
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Weighted polynomial least-squares fit of YAML data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if degree < 0 {
				return fmt.Errorf("--degree %d: must be ≥ 0", degree)
			}
			if math.IsNaN(svdCut) || math.IsInf(svdCut, 0) || svdCut < 0 {
				return fmt.Errorf("--svd-cut %g: must be finite and ≥ 0", svdCut)
			}
			var d fitData
			if err := readYAML(file, &d); err != nil {
				return err
			}
			a.log.Debug("fitting", "points", len(d.X), "degree", degree, "svd_cut", svdCut)

			res, err := curvefit.Fit(d.X, d.Y, d.Sigma, nil,
				curvefit.WithDegree(degree), curvefit.WithTolerance(svdCut))
			if err != nil {
				return err
			}
			if res.Rank < len(res.Coefficients) {
				a.log.Warn("rank-deficient fit", "rank", res.Rank, "coefficients", len(res.Coefficients))
			}
			out := cmd.OutOrStdout()
			for j, c := range res.Coefficients {
				fmt.Fprintf(out, "a%d = %.12g ± %.3g\n", j, c, res.StdErr(j))
			}
			fmt.Fprintf(out, "chi2 = %.6g\n", res.ChiSquare)

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with x, y and optional sigma")
	cmd.Flags().IntVarP(&degree, "degree", "d", curvefit.DefaultDegree, "polynomial degree")
	cmd.Flags().Float64Var(&svdCut, "svd-cut", matrix.DefaultSVDTolerance,
		"singular values below svd-cut·max are dropped")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) integrateCmd() *cobra.Command {
	var (
		fn, method string
		from, to   float64
	)
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Definite integral of a named function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, ok := integrands[fn]
			if !ok {
				return fmt.Errorf("unknown function %q (want one of %s)", fn, strings.Join(integrandNames(), ", "))
			}
			f := function.Scalar(g)
			tol := a.tolerance()
			a.log.Debug("integrating", "fn", fn, "method", method, "from", from, "to", to, "tol", tol)

			var (
				v   float64
				err error
			)
			switch method {
			case "trapezoid":
				v, err = quad.Trapezoid(f, from, to, tol)
			case "simpson":
				v, err = quad.Simpson(f, from, to, tol)
			case "lobatto":
				v, err = quad.AdaptLobatto(f, from, to, tol)
			case "gl10":
				v, err = quad.GaussLegendre10(f, from, to)
			case "gl20":
				v, err = quad.GaussLegendre20(f, from, to)
			case "gl40":
				v, err = quad.GaussLegendre40(f, from, to)
			default:
				return fmt.Errorf("unknown method %q", method)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.15g\n", v)

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&fn, "fn", "sin", "integrand: sin, cos, exp, gauss")
	fl.StringVar(&method, "method", "lobatto", "trapezoid, simpson, lobatto, gl10, gl20, gl40")
	fl.Float64Var(&from, "from", 0, "lower bound")
	fl.Float64Var(&to, "to", 1, "upper bound")

	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a dense linear system A·x = b from YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var d systemData
			if err := readYAML(file, &d); err != nil {
				return err
			}
			m, err := matrix.NewDenseFrom(d.A)
			if err != nil {
				return err
			}
			_, rcond, err := matrix.Condition(m.CloneDense())
			if err != nil {
				return err
			}
			a.log.Debug("condition estimate", "rcond", rcond)
			if rcond < a.tolerance() {
				a.log.Warn("ill-conditioned system", "rcond", rcond)
			}

			x, err := matrix.Solve(m, d.B)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, xi := range x {
				fmt.Fprintf(out, "x%d = %.12g\n", i, xi)
			}
			fmt.Fprintf(out, "rcond = %.3g\n", rcond)

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with matrix a and vector b")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	var p float64
	cmd := &cobra.Command{
		Use:   "stats [--] v1 v2 ...",
		Short: "Descriptive statistics of a sample",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseFloats(args)
			if err != nil {
				return err
			}
			a.log.Debug("summarizing", "n", len(data), "percentile", p)

			mean, err := stats.Mean(data)
			if err != nil {
				return err
			}
			lo, hi, err := stats.MinMax(data)
			if err != nil {
				return err
			}
			pv, err := stats.Percentile(data, p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n = %d\nmean = %.12g\n", len(data), mean)
			if sd, err := stats.StdDev(data); err == nil {
				fmt.Fprintf(out, "stddev = %.12g\n", sd)
			} else {
				a.log.Debug("stddev skipped", "err", err)
			}
			fmt.Fprintf(out, "min = %.12g\nmax = %.12g\np%g = %.12g\n", lo, hi, 100*p, pv)

			return nil
		},
	}
	cmd.Flags().Float64VarP(&p, "percentile", "p", 0.5, "percentile in [0, 1]")

	return cmd
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("argument %d: %q is not finite", i+1, s)
		}
		out[i] = v
	}

	return out, nil
}

func readYAML(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func integrandNames() []string {
	names := make([]string, 0, len(integrands))
	for k := range integrands {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}
