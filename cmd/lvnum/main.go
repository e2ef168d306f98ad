// SPDX-License-Identifier: MIT

// Command lvnum is a small front end to the numerical packages: polynomial
// zeros, least-squares fits, quadrature, dense linear solves and sample
// statistics.
//
// Configuration is read from lvnum.yaml (current directory or
// $HOME/.config/lvnum), LVNUM_* environment variables and flags, in
// increasing priority.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
