package search_test

import (
	"fmt"

	"github.com/osmiumic/temper/intmat"
	"github.com/osmiumic/temper/search"
	"github.com/osmiumic/temper/subgroup"
)

// ExampleFindJoin recovers 5-limit meantone from its best edos.
func ExampleFindJoin() {
	s := subgroup.MustParse("2.3.5")
	mapping, _ := intmat.FromInts([][]int64{{1, 0, -4}, {0, 1, 4}})
	opts := search.DefaultOptions()

	edos, err := search.FindEDOs(mapping, s, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range edos.Candidates[:5] {
		fmt.Printf("%s%.2f\n", c.Map, c.Badness)
	}

	join, err := search.FindJoin(mapping, edos.Candidates, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(join.Found, join.Indices)
	// Output:
	// [12 19 28]
	// 129.38
	// [7 11 16]
	// 141.15
	// [19 30 44]
	// 157.73
	// [5 8 12]
	// 191.27
	// [31 49 72]
	// 280.57
	// true [0 1]
}
