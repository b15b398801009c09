package context_test

import (
	"fmt"

	"github.com/db47h/bigfloat"
	"github.com/db47h/bigfloat/context"
)

func value(x *bigfloat.Float) float64 {
	f, _ := x.BigFloat(nil).Float64()
	return f
}

// Example demonstrates rounding through Contexts.
func Example() {
	ctx := context.New(8, bigfloat.ToNearestEven)
	x := ctx.NewFloat64(1.0 / 3)
	fmt.Println(value(x), ctx.Flags())

	narrow := context.New(3, bigfloat.ToZero)
	y := narrow.Round(nil, x)
	fmt.Println(value(y), narrow.Flags(), narrow.Err())

	ctx.ClearFlags()
	z := ctx.Neg(nil, y)
	fmt.Println(value(z), ctx.Flags())
	// Output:
	// 0.333984375 inexact
	// 0.3125 inexact <nil>
	// -0.3125 none
}
