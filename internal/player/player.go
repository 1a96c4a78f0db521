// Package player wires the shared cells, the track list, the decoder
// reader, and the output callback into a single start/stop handle: the
// Player Orchestrator of §4.E.
package player

import (
	"github.com/charmbracelet/log"

	"spindle/internal/cells"
	"spindle/internal/decode"
	"spindle/internal/output"
	"spindle/internal/tracklist"
)

// defaultQueueCapacity is the bounded sample-buffer queue's depth in
// blocks when Options.QueueCapacity is left unset. Roughly 100 decoder
// blocks of resident memory bounds worst-case pause duration before the
// reader starts sleeping on backpressure.
const defaultQueueCapacity = 100

// Cells bundles the shared lock-free state a Player exposes to control-
// plane readers (the TUI, MPRIS) for the lifetime of a playback session.
type Cells struct {
	Volume    *cells.Volume
	PlayState *cells.PlayState
	Sample    *cells.CurrentSample
	Track     *cells.CurrentTrack
}

// Player owns the shared cells, the immutable track list, and the thread
// lifetimes of a single playback session.
type Player struct {
	Cells     Cells
	TrackList *tracklist.TrackList

	device        output.Device
	newDecoder    func() decode.FileDecoder
	skip          tracklist.SkipSecs
	logger        *log.Logger
	queueCapacity int

	callback *output.Callback
	done     chan struct{}
}

// Options configures a Player beyond the track list and initial state.
type Options struct {
	InitialVolume uint8
	StartPlaying  bool
	Skip          tracklist.SkipSecs
	Logger        *log.Logger

	// QueueCapacity sets the bounded sample-buffer queue's depth in
	// blocks. Zero means defaultQueueCapacity.
	QueueCapacity int
}

// New initializes a Player's cells from opts and wires it to device. The
// Reader is not started until Start is called.
func New(tracks *tracklist.TrackList, device output.Device, opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	capacity := opts.QueueCapacity
	if capacity <= 0 {
		capacity = defaultQueueCapacity
	}
	return &Player{
		Cells: Cells{
			Volume:    cells.NewVolume(opts.InitialVolume),
			PlayState: cells.NewPlayState(opts.StartPlaying),
			Sample:    cells.NewCurrentSample(0),
			Track:     cells.NewCurrentTrack(0),
		},
		TrackList:     tracks,
		device:        device,
		newDecoder:    decode.NewFlacDecoder,
		skip:          opts.Skip,
		logger:        logger,
		queueCapacity: capacity,
		done:          make(chan struct{}, 1),
	}
}

// Start spawns the Reader, registers the Output Callback with the
// device, and begins playback. It returns once the device has started
// invoking the callback; call Wait to block until the session finishes.
func (p *Player) Start() error {
	params, err := p.TrackList.DeriveAudioParams()
	if err != nil {
		return err
	}

	queue := make(chan []float32, p.queueCapacity)
	budget := tracklist.NewBudget(p.skip)

	paths := make([]string, len(p.TrackList.Tracks))
	for i, t := range p.TrackList.Tracks {
		paths[i] = t.Path
	}

	reader := decode.NewReader(paths, p.newDecoder, queue, budget, p.Cells.Sample, p.logger)
	go reader.Run()

	p.callback = output.New(output.Config{
		Queue:      queue,
		Volume:     p.Cells.Volume,
		PlayState:  p.Cells.PlayState,
		Sample:     p.Cells.Sample,
		Track:      p.Cells.Track,
		TrackList:  p.TrackList,
		Channels:   params.ChannelCount,
		Logger:     p.logger,
		DoneSignal: p.done,
	})

	if err := p.device.Open(params.ChannelCount, params.SampleRate, 0, p.callback.Fill); err != nil {
		return err
	}
	return p.device.Start()
}

// Wait blocks until the Callback has observed end-of-stream (the queue
// closed and no residual data remains).
func (p *Player) Wait() {
	<-p.done
}

// Done reports whether playback has reached end-of-stream.
func (p *Player) Done() bool {
	return p.callback != nil && p.callback.Done()
}

// Stop halts the device and releases it. It does not interrupt the
// Reader; per §5, there is no mid-playback cancellation primitive beyond
// process exit.
func (p *Player) Stop() error {
	if err := p.device.Stop(); err != nil {
		return err
	}
	return p.device.Close()
}
