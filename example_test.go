package bigfloat_test

import (
	"fmt"

	"github.com/db47h/bigfloat"
)

func ExampleFloat_Copy() {
	x, _ := bigfloat.FromFloat(53, -5.75, bigfloat.ToZero) // -0.10111 × 2**3
	z := bigfloat.New(4)
	for _, mode := range []bigfloat.RoundingMode{
		bigfloat.ToNearestEven,
		bigfloat.ToZero,
		bigfloat.ToPositiveInf,
		bigfloat.ToNegativeInf,
	} {
		acc := z.Copy(x, mode)
		f, _ := z.BigFloat(nil).Float64()
		fmt.Printf("%-13v %5g %v\n", mode, f, acc)
	}
	// Output:
	// ToNearestEven    -6 Below
	// ToZero         -5.5 Above
	// ToPositiveInf  -5.5 Above
	// ToNegativeInf    -6 Below
}

func ExampleFloat_Copy_overflow() {
	x, _ := bigfloat.FromFloat(8, 0.9375, bigfloat.ToZero) // 0.1111 × 2**0
	z := bigfloat.New(8)
	z.SetParts(true, bigfloat.FiniteExp(bigfloat.MaxExp), x.Mant())

	y := bigfloat.New(3)
	fmt.Println(y.Copy(z, bigfloat.AwayFromZero), y.Exponent(), y.Signbit())
	// Output:
	// Overflow Inf true
}
