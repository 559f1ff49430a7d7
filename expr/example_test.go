// SPDX-License-Identifier: MIT

package expr_test

import (
	"fmt"

	"github.com/katalvlaran/chemeval/expr"
)

func ExampleParse() {
	e, err := expr.Parse("energy(photon(wavelength = nm(325)))")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e)

	_, err = expr.Parse("nm(250")
	fmt.Println(err)
	// Output:
	// energy(photon(wavelength=nm(325)))
	// expr: syntax error at offset 6: expected ',' or ')' in call to nm
}
