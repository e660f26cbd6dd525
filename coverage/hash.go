package coverage

// Mix is a 3-round xorshift-multiply mixer used to fingerprint edge
// endpoints. Deterministic across processes and runs; not for
// cryptographic use.
func Mix(x uint64) uint64 {
	x = (x>>16 ^ x) * 0x45d9f3b
	x = (x>>16 ^ x) * 0x45d9f3b
	x = (x>>16 ^ x) ^ x
	return x
}
