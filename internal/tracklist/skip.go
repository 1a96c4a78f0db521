package tracklist

import (
	"fmt"
	"strconv"
	"strings"
)

// SkipSecs is a startup-only forward-skip budget, expressed in whole
// seconds and resolved against a sample rate into a frame count to
// discard from the decoder before audio is enqueued.
type SkipSecs struct {
	Seconds int
}

// ParseSkip parses a "-t/--time" value. Two colon-separated fields are
// read as MM:SS; three fields are read as HH:MM:SS. Each field must be a
// non-negative decimal integer.
func ParseSkip(s string) (SkipSecs, error) {
	fields := strings.Split(s, ":")
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return SkipSecs{}, fmt.Errorf("tracklist: invalid time field %q in %q", f, s)
		}
		nums[i] = n
	}

	var total int
	switch len(nums) {
	case 2:
		total = nums[0]*60 + nums[1]
	case 3:
		total = nums[0]*3600 + nums[1]*60 + nums[2]
	default:
		return SkipSecs{}, fmt.Errorf("tracklist: %q is not MM:SS or HH:MM:SS", s)
	}

	return SkipSecs{Seconds: total}, nil
}

// FrameCount returns the number of interleaved frames this skip budget
// represents at sampleRate.
func (s SkipSecs) FrameCount(sampleRate int) uint64 {
	return uint64(s.Seconds) * uint64(sampleRate)
}

// Budget is a one-shot, drain-once view of a SkipSecs value. The Reader
// calls DrainAsInterleavedSamples exactly once per run, at the start of
// the first track, to learn how many frames to discard before enqueuing;
// any subsequent call returns 0.
type Budget struct {
	skip     SkipSecs
	consumed bool
}

// NewBudget wraps s in a one-shot Budget.
func NewBudget(s SkipSecs) *Budget {
	return &Budget{skip: s}
}

// DrainAsInterleavedSamples returns the frame count represented by the
// wrapped SkipSecs at sampleRate on its first call, and 0 on every call
// thereafter.
func (b *Budget) DrainAsInterleavedSamples(sampleRate int) uint64 {
	if b.consumed {
		return 0
	}
	b.consumed = true
	return b.skip.FrameCount(sampleRate)
}
