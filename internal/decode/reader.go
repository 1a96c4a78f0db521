package decode

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"spindle/internal/cells"
	"spindle/internal/tracklist"
)

// queueFullRetryInterval is how long the Reader sleeps before retrying an
// enqueue against a full queue. A few seconds is acceptable: the output
// callback holds its own residual buffer, so the consumer side tolerates
// the producer falling behind briefly.
const queueFullRetryInterval = 4 * time.Second

// Reader is the single dedicated (non-real-time) producer thread of
// §4.C: it walks a playlist in order, decodes each file, and pushes
// interleaved float32 blocks onto a bounded queue.
type Reader struct {
	paths         []string
	newDecoder    func() FileDecoder
	queue         chan<- []float32
	skip          *tracklist.Budget
	currentSample *cells.CurrentSample
	logger        *log.Logger
}

// NewReader builds a Reader over paths (in playback order), pushing
// decoded blocks onto queue. skip is drained entirely at the start of the
// first file; currentSample is advanced (but never read) for frames the
// skip budget discards.
func NewReader(paths []string, newDecoder func() FileDecoder, queue chan<- []float32, skip *tracklist.Budget, currentSample *cells.CurrentSample, logger *log.Logger) *Reader {
	if logger == nil {
		logger = log.Default()
	}
	return &Reader{
		paths:         paths,
		newDecoder:    newDecoder,
		queue:         queue,
		skip:          skip,
		currentSample: currentSample,
		logger:        logger,
	}
}

// Run decodes every path in order, enqueuing blocks, and closes queue
// when the playlist is exhausted. A consumer that stops receiving is not
// detected; Run then stays in enqueue's retry loop. It is
// meant to be run on its own goroutine, matching the dedicated OS thread
// of §5 (runtime.LockOSThread is unnecessary here: only the output
// callback needs real-time scheduling).
func (r *Reader) Run() {
	defer close(r.queue)

	var remaining uint64
	first := true

	for _, path := range r.paths {
		if !strings.EqualFold(strings.TrimPrefix(filepath.Ext(path), "."), "flac") {
			r.logger.Warn("skipping non-flac file", "path", path)
			continue
		}

		dec := r.newDecoder()
		params, err := dec.Open(path)
		if err != nil {
			r.logger.Warn("failed to open file, skipping", "path", path, "err", err)
			continue
		}

		if first {
			remaining = r.skip.DrainAsInterleavedSamples(params.SampleRate) * uint64(params.Channels)
			first = false
		}

		r.decodeFile(dec, path, params.Channels, &remaining)
		dec.Close()
	}
}

// decodeFile drains one file's packets, discarding interleaved samples
// against remaining (the skip budget, in interleaved samples) before
// resuming normal enqueueing. It returns at end of stream or on the first
// decode error.
func (r *Reader) decodeFile(dec FileDecoder, path string, channels int, remaining *uint64) {
	for {
		block, err := dec.NextBlock()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.logger.Warn("decode error, advancing to next file", "path", path, "err", err)
			}
			return
		}

		if *remaining > 0 {
			if uint64(len(block)) <= *remaining {
				*remaining -= uint64(len(block))
				if r.currentSample != nil {
					r.currentSample.GetAndAdvance(uint64(len(block)) / uint64(channels))
				}
				continue
			}
			discard := *remaining
			if r.currentSample != nil {
				r.currentSample.GetAndAdvance(discard / uint64(channels))
			}
			block = block[discard:]
			*remaining = 0
		}

		if len(block) == 0 {
			continue
		}

		if !r.enqueue(block) {
			return
		}
	}
}

// enqueue attempts to send block on the queue, sleeping and retrying
// while the queue is full. It returns true once the block is sent. It
// cannot observe a consumer that has stopped receiving: against a queue
// nobody drains it keeps retrying, so it never returns false.
func (r *Reader) enqueue(block []float32) bool {
	for {
		select {
		case r.queue <- block:
			return true
		default:
		}

		// queue was full; retry with the same data
		time.Sleep(queueFullRetryInterval)
	}
}
