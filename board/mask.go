package board

import (
	"errors"
	"fmt"
)

// ErrInvalidMask is returned for a mask that is empty, too long, or holds a
// zero or repeated delta.
var ErrInvalidMask = errors.New("invalid movement mask")

const maxMaskLen = 8

// Delta is a one-step coordinate offset.
type Delta struct {
	DX int
	DY int
}

// Mask is the ordered set of deltas a mover may take in one step.
// Successors are produced in mask order.
type Mask []Delta

// DiagonalMask returns all eight surrounding deltas, dx outer and dy inner.
func DiagonalMask() Mask {
	mask := make(Mask, 0, maxMaskLen)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			mask = append(mask, Delta{DX: dx, DY: dy})
		}
	}
	return mask
}

// CardinalMask returns north, west, east and south.
func CardinalMask() Mask {
	return Mask{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
}

// LegacyMask returns north, west, east and south-east. It never moves
// straight south; use it only to reproduce older level runs.
func LegacyMask() Mask {
	return Mask{{0, -1}, {-1, 0}, {1, 0}, {1, 1}}
}

// MaskByName resolves "diagonal", "cardinal" or "legacy".
func MaskByName(name string) (Mask, error) {
	switch name {
	case "diagonal":
		return DiagonalMask(), nil
	case "cardinal":
		return CardinalMask(), nil
	case "legacy":
		return LegacyMask(), nil
	default:
		return nil, fmt.Errorf("%w: unknown mask %q", ErrInvalidMask, name)
	}
}

// Name returns the MaskByName name of m, or "custom".
func (m Mask) Name() string {
	for _, name := range []string{"diagonal", "cardinal", "legacy"} {
		known, _ := MaskByName(name)
		if m.equal(known) {
			return name
		}
	}
	return "custom"
}

// Validate checks the mask invariants.
func (m Mask) Validate() error {
	if len(m) == 0 || len(m) > maxMaskLen {
		return fmt.Errorf("%w: %d deltas", ErrInvalidMask, len(m))
	}
	seen := make(map[Delta]struct{}, len(m))
	for _, d := range m {
		if d == (Delta{}) {
			return fmt.Errorf("%w: zero delta", ErrInvalidMask)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: duplicate delta (%d,%d)", ErrInvalidMask, d.DX, d.DY)
		}
		seen[d] = struct{}{}
	}
	return nil
}

func (m Mask) equal(o Mask) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}
