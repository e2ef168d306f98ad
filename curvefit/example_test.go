// SPDX-License-Identifier: MIT
package curvefit_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/curvefit"
)

func ExampleFit() {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}
	res, err := curvefit.Fit(x, y, nil, nil, curvefit.WithDegree(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("a=%.3f b=%.3f\n", res.Coefficients[0], res.Coefficients[1])
	// Output: a=1.000 b=2.000
}
