// SPDX-License-Identifier: MIT
package pairindex_test

import (
	"fmt"

	"github.com/katalvlaran/erdos/pairindex"
)

func ExamplePairOf() {
	for e := uint64(0); e < 6; e++ {
		p := pairindex.PairOf(e)
		fmt.Printf("%d→(%d,%d) ", e, p.Row, p.Col)
	}
	fmt.Println()
	// Output: 0→(1,0) 1→(2,0) 2→(2,1) 3→(3,0) 4→(3,1) 5→(3,2)
}
