package index

// Flat index layout is mixed-radix with axis 0 varying fastest:
// flat = i0 + i1*s0 + i2*s0*s1 + ...

func Size(shape []int64) int64 {
	size := int64(1)

	for _, s := range shape {
		size *= s
	}

	return size
}

func Flatten(shape []int64, indices []int64) (flat int64) {
	block := int64(1)

	for a, s := range shape {
		flat += indices[a] * block
		block *= s
	}

	return
}

func Unflatten(shape []int64, flat int64) []int64 {
	indices := make([]int64, len(shape))

	for a, s := range shape {
		indices[a] = flat % s
		flat /= s
	}

	return indices
}

func ValidShape(shape []int64) bool {
	for _, s := range shape {
		if s < 1 {
			return false
		}
	}

	return true
}
