package fockspace

// IndexScheme selects how a pair (idxUp, idxDn) is flattened into one index.
type IndexScheme int

const (
	// IndexBySize multiplies idxUp by the full size of the container
	// (numUp*numDn for a sector). This is the established behavior and the
	// default; it does not match the iteration order of States.
	IndexBySize IndexScheme = iota
	// IndexRowMajor multiplies idxUp by the number of down states, which is
	// the position of the pair in States.
	IndexRowMajor
)

// String returns the name of the scheme.
func (s IndexScheme) String() string {
	switch s {
	case IndexBySize:
		return "by-size"
	case IndexRowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

func (s IndexScheme) stride(numUp, numDn int) int {
	if s == IndexRowMajor {
		return numDn
	}
	return numUp * numDn
}

// Flatten maps (idxUp, idxDn) to a flat index.
func (s IndexScheme) Flatten(idxUp, idxDn, numUp, numDn int) int {
	return idxUp*s.stride(numUp, numDn) + idxDn
}

// Split inverts Flatten. It returns (-1, -1) for an empty container.
func (s IndexScheme) Split(flat, numUp, numDn int) (int, int) {
	stride := s.stride(numUp, numDn)
	if stride <= 0 {
		return -1, -1
	}
	return flat / stride, flat % stride
}
