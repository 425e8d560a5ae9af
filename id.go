package backer

import "hash/fnv"

// PathID derives a transition identity from a position path such as the
// indices of a leaf's ancestors. Distinct paths give distinct identities
// with overwhelming probability.
func PathID(path ...int) uint64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, p := range path {
		h = mix(h ^ uint64(p))
	}
	return mix(h ^ uint64(len(path)))
}

// StringID derives a transition identity from a name using 64-bit FNV-1a.
// Names that collide share animation state.
func StringID(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// mix is the splitmix64 finalizer.
func mix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
