package naturals

import "github.com/goose-lang/std"

// FirstN returns the first n natural numbers 1..n in order.
func FirstN(n uint64) []uint64 {
	xs := []uint64{}
	// loop from 0 to n: an i <= n condition would not terminate for the
	// largest n
	for i := uint64(0); i < n; i++ {
		xs = append(xs, i+1)
	}
	return xs
}

// Sum returns the sum of xs, assuming it does not overflow.
func Sum(xs []uint64) uint64 {
	var total = uint64(0)
	for _, x := range xs {
		total = std.SumAssumeNoOverflow(total, x)
	}
	return total
}
