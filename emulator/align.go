package emulator

import "golang.org/x/exp/constraints"

func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}

// PageOf rounds addr down to the page boundary given by size.
func PageOf[I constraints.Integer](addr, size I) I {
	return addr &^ (size - 1)
}
