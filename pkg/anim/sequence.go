package anim

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Sequence cycles through a fixed list of keyframe motors.
type Sequence struct {
	keys []pga.Motor
	i    int
}

// NewSequence normalizes every key. It fails on an empty list or on a key
// that cannot be normalized.
func NewSequence(keys ...pga.Motor) (*Sequence, error) {
	if len(keys) == 0 {
		return nil, errorsmod.Wrap(pga.ErrDegenerateGeometry, "sequence has no keyframes")
	}
	s := &Sequence{keys: make([]pga.Motor, len(keys))}
	for i, k := range keys {
		n, err := k.Normalize()
		if err != nil {
			return nil, errorsmod.Wrapf(err, "keyframe %d", i)
		}
		s.keys[i] = n
	}
	return s, nil
}

// Len returns the number of keys.
func (s *Sequence) Len() int { return len(s.keys) }

// Index returns the position of the current key.
func (s *Sequence) Index() int { return s.i }

// Current returns the current key.
func (s *Sequence) Current() pga.Motor { return s.keys[s.i] }

// Next advances to the following key, wrapping after the last, and returns it.
func (s *Sequence) Next() pga.Motor {
	s.i = (s.i + 1) % len(s.keys)
	return s.keys[s.i]
}

// Reset returns to the first key.
func (s *Sequence) Reset() pga.Motor {
	s.i = 0
	return s.keys[0]
}
