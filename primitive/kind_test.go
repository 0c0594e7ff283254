package primitive_test

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/govalues/decimal"

	"numops/primitive"
)

func Example() {
	type Color int32
	type Weekday uint8
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(float64(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf((*big.Int)(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(decimal.Decimal{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Color(0))))
	fmt.Println(primitive.UnderlyingKind(reflect.TypeOf(Color(0))))
	fmt.Println(primitive.UnderlyingKind(reflect.TypeOf(Weekday(0))))
	fmt.Println(primitive.UnderlyingKind(reflect.TypeOf(int32(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindFloat64
	// KindBigInt
	// KindDecimal
	// KindEnum(0)
	// KindInt32
	// KindUint8
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleKindEnum_Bits() {
	fmt.Println(primitive.KindInt8.Bits())
	fmt.Println(primitive.KindUint16.Bits())
	fmt.Println(primitive.KindFloat64.Bits())
	// Output:
	// 8
	// 16
	// 64
}
