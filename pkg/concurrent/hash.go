package concurrent

// HashUint64 mixes a 64-bit key (the SplitMix64 finalizer) well enough to
// spread boards evenly across shards; it is not cryptographically secure
// and not meant to be stable across process restarts.
func HashUint64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
