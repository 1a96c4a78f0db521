// Package cells provides the lock-free shared state shared by the reader,
// the output callback, and any control-plane reader (the TUI, MPRIS) without
// requiring coordination with the real-time audio thread.
package cells

import (
	"errors"
	"strconv"
	"strings"
	"sync/atomic"
)

// ErrInvalidValue is returned by Volume.Set when v > 100.
var ErrInvalidValue = errors.New("cells: volume must be in [0,100]")

// ErrInvalidString is returned by Volume.SetFromString when s does not
// parse as a decimal integer, or parses outside [0,100].
var ErrInvalidString = errors.New("cells: invalid volume string")

const maxVolume = 100

// Volume is a lock-free, atomically updated percentage in [0,100].
//
// Up and Down return the value the cell held immediately before the
// update, not the new value.
type Volume struct {
	v atomic.Uint32
}

// NewVolume returns a Volume initialized to v, clamped into [0,100].
func NewVolume(v uint8) *Volume {
	vol := &Volume{}
	if v > maxVolume {
		v = maxVolume
	}
	vol.v.Store(uint32(v))
	return vol
}

// Get returns the current value.
func (vol *Volume) Get() uint8 {
	return uint8(vol.v.Load())
}

// Set overwrites the current value. It fails if v > 100.
func (vol *Volume) Set(v uint8) error {
	if v > maxVolume {
		return ErrInvalidValue
	}
	vol.v.Store(uint32(v))
	return nil
}

// SetFromString trims s, parses it as a decimal integer, and applies Set.
func (vol *Volume) SetFromString(s string) error {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxVolume {
		return ErrInvalidString
	}
	return vol.Set(uint8(n))
}

// Up atomically adds n to the volume, saturating at 100, and returns the
// value the cell held before the update.
func (vol *Volume) Up(n uint8) uint8 {
	return vol.addSaturating(int(n))
}

// Down atomically subtracts n from the volume, saturating at 0, and
// returns the value the cell held before the update.
func (vol *Volume) Down(n uint8) uint8 {
	return vol.addSaturating(-int(n))
}

func (vol *Volume) addSaturating(delta int) uint8 {
	for {
		prev := vol.v.Load()
		next := int(prev) + delta
		if next > maxVolume {
			next = maxVolume
		}
		if next < 0 {
			next = 0
		}
		if vol.v.CompareAndSwap(prev, uint32(next)) {
			return uint8(prev)
		}
	}
}
