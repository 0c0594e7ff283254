package ops_test

import (
	"fmt"
	"math/big"

	"numops/nullable"
	"numops/ops"
)

func Example() {
	sum, _ := ops.Add(int32(4), int32(5))
	fmt.Println(sum)

	hex, _ := ops.Format(uint8(255), "X")
	fmt.Println(hex)

	fmt.Println(ops.N(big.NewInt(6)).Mul(big.NewInt(7)))
	// Output:
	// 9
	// FF
	// 42
}

func Example_nullable() {
	sum, _ := ops.Add(nullable.Some[int32](4), nullable.None[int32]())

	formatted, _ := ops.Format(sum, "")
	fmt.Println(formatted)

	fmt.Println(sum.GetOr(-1))
	// Output:
	// null
	// -1
}
