package core

// Shape selects the neighborhood traversed by ForNeighborhood.
type Shape uint8

const (
	// Square visits every cell within Chebyshev distance r (Moore).
	Square Shape = iota
	// Diamond visits every cell within taxicab distance r (von Neumann).
	Diamond
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Diamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// ForNeighborhood calls visit for each neighbor of (ci, cj) on a w x h torus.
// i1, j1 are the offsets from the center and i2, j2 the wrapped coordinates.
// The center is never visited. Offsets are enumerated with i1 ascending in the
// outer loop and j1 ascending in the inner loop.
func ForNeighborhood(shape Shape, ci, cj, w, h, radius int, visit func(i1, j1, i2, j2 int)) {
	for i1 := -radius; i1 <= radius; i1++ {
		span := radius
		if shape == Diamond {
			span = radius - abs(i1)
		}
		for j1 := -span; j1 <= span; j1++ {
			if i1 == 0 && j1 == 0 {
				continue
			}
			visit(i1, j1, mod(ci+i1, w), mod(cj+j1, h))
		}
	}
}

// NeighborCount is the number of visits ForNeighborhood makes for radius r on
// a grid large enough that no offsets alias.
func NeighborCount(shape Shape, r int) int {
	if r <= 0 {
		return 0
	}
	if shape == Diamond {
		return 2 * r * (r + 1)
	}
	return (2*r+1)*(2*r+1) - 1
}

func mod(a, b int) int {
	return (a%b + b) % b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
