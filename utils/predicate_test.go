package utils_test

import (
	"fmt"

	"numops/utils"
)

func ExampleIsInRange() {
	fmt.Println(utils.IsInRange(0, 5, 10))
	fmt.Println(utils.IsInRange(0, 15, 10))
	fmt.Println(utils.IsInRange(-1.5, -1.5, 2.5))
	// Output:
	// true
	// false
	// true
}
