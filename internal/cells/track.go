package cells

import "sync/atomic"

// CurrentTrack is the index into TrackList.Tracks of the track currently
// being heard. It is strictly non-decreasing over the life of a playback
// session.
type CurrentTrack struct {
	i atomic.Uint64
}

// NewCurrentTrack returns a CurrentTrack initialized to i.
func NewCurrentTrack(i int) *CurrentTrack {
	ct := &CurrentTrack{}
	ct.i.Store(uint64(i))
	return ct
}

// Load returns the current index.
func (ct *CurrentTrack) Load() int {
	return int(ct.i.Load())
}

// Store overwrites the current index.
func (ct *CurrentTrack) Store(i int) {
	ct.i.Store(uint64(i))
}
