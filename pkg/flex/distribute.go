package flex

import (
	"github.com/matzehuels/cellkit/pkg/errors"
)

// Distribution is the result of splitting main-axis free space.
type Distribution struct {
	Leading int // Space before the first child
	Between int // Space between adjacent children, spacing included
}

// distributeFunc computes a Distribution for non-negative free space.
type distributeFunc func(free, count int, flipped bool, spacing int) Distribution

var mainTable = map[MainAxisAlignment]distributeFunc{
	Start: distributeStart,
	End: func(free, _ int, flipped bool, spacing int) Distribution {
		if flipped {
			return Distribution{Leading: 0, Between: spacing}
		}
		return Distribution{Leading: free, Between: spacing}
	},
	Center: func(free, _ int, _ bool, spacing int) Distribution {
		return Distribution{Leading: free / 2, Between: spacing}
	},
	SpaceBetween: func(free, count int, flipped bool, spacing int) Distribution {
		if count < 2 {
			return distributeStart(free, count, flipped, spacing)
		}
		return Distribution{Leading: 0, Between: free/(count-1) + spacing}
	},
	SpaceAround: func(free, count int, flipped bool, spacing int) Distribution {
		if count == 0 {
			return distributeStart(free, count, flipped, spacing)
		}
		return Distribution{Leading: free / count / 2, Between: free/count + spacing}
	},
	SpaceEvenly: func(free, count int, _ bool, spacing int) Distribution {
		unit := free / (count + 1)
		return Distribution{Leading: unit, Between: unit + spacing}
	},
}

func distributeStart(free, _ int, flipped bool, spacing int) Distribution {
	if flipped {
		return Distribution{Leading: free, Between: spacing}
	}
	return Distribution{Leading: 0, Between: spacing}
}

// DistributeMain splits free main-axis space among count children.
//
// flipped swaps the meaning of start and end (a column flowing upwards).
// Negative free space is clamped to zero. Negative spacing or a negative
// count is an INVALID_GEOMETRY error.
func DistributeMain(a MainAxisAlignment, free, count int, flipped bool, spacing int) (Distribution, error) {
	if err := errors.ValidateSpacing(spacing); err != nil {
		return Distribution{}, err
	}
	if count < 0 {
		return Distribution{}, errors.New(errors.ErrCodeInvalidGeometry, "item count must be >= 0, got %d", count)
	}
	fn, ok := mainTable[a]
	if !ok {
		return Distribution{}, errors.New(errors.ErrCodeInternal, "unknown main axis alignment: %d", a)
	}
	return fn(max(free, 0), count, flipped, spacing), nil
}

var crossTable = map[CrossAxisAlignment]func(free int, flipped bool) int{
	CrossStretch: func(int, bool) int { return 0 },
	CrossStart: func(free int, flipped bool) int {
		if flipped {
			return free
		}
		return 0
	},
	CrossCenter: func(free int, _ bool) int { return free / 2 },
	CrossEnd: func(free int, flipped bool) int {
		if flipped {
			return 0
		}
		return free
	},
}

// CrossOffset returns the leading cross-axis offset of a child given the
// free cross-axis space. Negative free space is clamped to zero.
func CrossOffset(a CrossAxisAlignment, free int, flipped bool) int {
	fn, ok := crossTable[a]
	if !ok {
		return 0
	}
	return fn(max(free, 0), flipped)
}

// Shares divides remaining space among flexible children in proportion to
// their factors. Each share is floored; the cells left over by flooring go
// one at a time to the earliest children, so the shares always sum to
// remaining. Negative remaining space is clamped to zero.
func Shares(remaining int, factors []int) ([]int, error) {
	total := 0
	for _, f := range factors {
		if err := errors.ValidateFlexFactor(f); err != nil {
			return nil, err
		}
		total += f
	}
	shares := make([]int, len(factors))
	if total == 0 {
		return shares, nil
	}

	remaining = max(remaining, 0)
	used := 0
	for i, f := range factors {
		shares[i] = remaining * f / total
		used += shares[i]
	}
	for i := 0; used < remaining; i++ {
		shares[i%len(shares)]++
		used++
	}
	return shares, nil
}
