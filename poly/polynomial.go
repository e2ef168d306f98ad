// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"strings"
)

// Polynomial holds complex coefficients in increasing power.
type Polynomial []complex128

// New returns a polynomial owning a copy of coeffs (increasing power).
func New(coeffs ...complex128) Polynomial {
	return append(Polynomial(nil), coeffs...)
}

// FromReal returns a polynomial with real coefficients (increasing power).
func FromReal(coeffs ...float64) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = complex(c, 0)
	}

	return p
}

// FromRoots returns the monic polynomial ∏ (z − rᵢ).
func FromRoots(roots ...complex128) Polynomial {
	p := make(Polynomial, len(roots)+1)
	p[0] = 1
	for k, r := range roots {
		// multiply the degree-k prefix by (z − r)
		for i := k + 1; i > 0; i-- {
			p[i] = p[i-1] - r*p[i]
		}
		p[0] = -r * p[0]
	}

	return p
}

// Degree returns the nominal degree len(p) − 1 (−1 for an empty polynomial).
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval evaluates p(z) by Horner's rule.
func (p Polynomial) Eval(z complex128) complex128 {
	var v complex128
	for i := len(p) - 1; i >= 0; i-- {
		v = v*z + p[i]
	}

	return v
}

// Derivative returns p′. The derivative of a constant is the empty polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}
	d := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		d[i-1] = complex(float64(i), 0) * p[i]
	}

	return d
}

// Trim returns p without trailing (highest-power) zero coefficients, keeping
// at least one coefficient when p is not empty.
func (p Polynomial) Trim() Polynomial {
	n := len(p)
	for n > 1 && p[n-1] == 0 {
		n--
	}

	return p[:n:n]
}

// String formats p as "c0 + c1·z + …" for diagnostics.
func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&b, "%v", c)
		case 1:
			fmt.Fprintf(&b, "%v·z", c)
		default:
			fmt.Fprintf(&b, "%v·z^%d", c, i)
		}
	}

	return b.String()
}
