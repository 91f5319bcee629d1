// SPDX-License-Identifier: MIT

package spectral_test

import (
	"fmt"

	"github.com/katalvlaran/bookworm/spectral"
)

func ExampleSelectK() {
	// 9 + 0.5 reaches 90% of 10.5 only once the first two values are in.
	fmt.Println(spectral.SelectK([]float64{9, 0.5, 0.5, 0.5}))
	// Output: 2
}
