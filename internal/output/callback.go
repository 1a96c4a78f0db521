// Package output implements the real-time audio callback of §4.D: it
// drains decoded sample blocks from the Reader's queue, scales them by
// volume, writes them into the device's buffer, and advances playback
// position. Every code path in Callback.Fill must be panic-free and
// allocation-free after the first invocation.
package output

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"spindle/internal/cells"
	"spindle/internal/rtprio"
	"spindle/internal/tracklist"
)

// Callback holds the mutable state of the real-time output loop across
// invocations: the residual buffer left over from the last partial
// drain, and the one-time initialization/done latches.
type Callback struct {
	queue      <-chan []float32
	volume     *cells.Volume
	playState  *cells.PlayState
	sample     *cells.CurrentSample
	track      *cells.CurrentTrack
	trackList  *tracklist.TrackList
	channels   int
	logger     *log.Logger
	doneSignal chan<- struct{}

	buf         []float32
	initialized bool
	isDone      atomic.Bool
}

// Config is the set of shared handles the Callback needs to do its job.
// All fields are required.
type Config struct {
	Queue      <-chan []float32
	Volume     *cells.Volume
	PlayState  *cells.PlayState
	Sample     *cells.CurrentSample
	Track      *cells.CurrentTrack
	TrackList  *tracklist.TrackList
	Channels   int
	Logger     *log.Logger
	DoneSignal chan<- struct{} // closed or sent-to, best-effort, when the queue closes
}

// New builds a Callback from cfg.
func New(cfg Config) *Callback {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Callback{
		queue:      cfg.Queue,
		volume:     cfg.Volume,
		playState:  cfg.PlayState,
		sample:     cfg.Sample,
		track:      cfg.Track,
		trackList:  cfg.TrackList,
		channels:   cfg.Channels,
		logger:     logger,
		doneSignal: cfg.DoneSignal,
	}
}

// Done reports whether the callback has observed the queue closing and
// has no more residual data to emit.
func (c *Callback) Done() bool {
	return c.isDone.Load()
}

// Fill is the function the audio device invokes periodically. data must
// be a writable slice of length frames*channels. Fill never blocks and
// never panics.
func (c *Callback) Fill(data []float32) {
	if c.playState.IsPaused() || c.isDone.Load() {
		zero(data)
		return
	}

	if !c.initialized {
		size := len(data)
		if err := rtprio.Promote(size/maxInt(c.channels, 1), 0); err != nil {
			c.logger.Warn("failed to promote output thread to real-time priority", "err", err)
		}
		c.buf = make([]float32, 0, 2*size)
		c.initialized = true
	}

	c.refill(len(data))
	c.emit(data)
}

// refill tops buf up to at least size samples by non-blocking receives
// from the queue, scaling each incoming sample by the current volume as
// it is appended.
func (c *Callback) refill(size int) {
	for len(c.buf) < size {
		select {
		case block, ok := <-c.queue:
			if !ok {
				c.signalDone()
				return
			}
			v := float32(c.volume.Get()) / 100.0
			for _, s := range block {
				c.buf = append(c.buf, s*v)
			}
		default:
			return // under-run: emit whatever is already buffered
		}
	}
}

// emit copies min(size, len(buf)) samples into data, zero-pads any
// remainder, drains the copied prefix from buf, and advances position.
func (c *Callback) emit(data []float32) {
	size := len(data)
	max := size
	if len(c.buf) < max {
		max = len(c.buf)
	}

	copy(data, c.buf[:max])
	if max < size {
		zero(data[max:])
		if !c.isDone.Load() {
			c.logger.Warn("output under-run", "wanted", size, "got", max)
		}
	}

	c.buf = c.buf[:copy(c.buf, c.buf[max:])]

	frames := uint64(max / c.channels)
	prev := c.sample.GetAndAdvance(frames)
	c.track.Store(c.trackList.FindPlaying(prev))
}

// signalDone fires at most once (guarded by the isDone latch), so a
// single-slot buffered doneSignal channel never blocks the real-time
// callback here regardless of whether a receiver is listening yet.
func (c *Callback) signalDone() {
	if c.isDone.CompareAndSwap(false, true) && c.doneSignal != nil {
		c.doneSignal <- struct{}{}
	}
}

func zero(data []float32) {
	for i := range data {
		data[i] = 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
